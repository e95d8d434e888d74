package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/malphitee/ec2-network-monitor/pkg/version"
)

// displayWelcomeBanner prints the startup banner with version information.
func displayWelcomeBanner() {
	banner := `
  ___ ___ ___   _  _     _                  _     __  __          _ _
 | __/ __|_  ) | \| |___| |___ __ _____ _ _| |__ |  \/  |___ _ _ (_) |_ ___ _ _
 | _| (__ / /  | .' / -_)  _\ V  V / _ \ '_| / / | |\/| / _ \ ' \| |  _/ _ \ '_|
 |___\___/___| |_|\_\___|\__|\_/\_/\___/_| |_\_\ |_|  |_\___/_||_|_|\__\___/_|
	`
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(cyan(banner))
	fmt.Println(blue(fmt.Sprintf("EC2 Network Monitor (v%s)", version.FormatVersion())))
}
