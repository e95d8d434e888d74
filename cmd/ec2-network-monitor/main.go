package main

import (
	"fmt"
	"os"

	"github.com/malphitee/ec2-network-monitor/internal/adapter/driving/cli"
	"github.com/malphitee/ec2-network-monitor/pkg/console"
)

func main() {
	app := cli.NewCLIApp(console.NewConsole())

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
