package cli

import (
	"context"

	"github.com/robfig/cron"
	"github.com/spf13/cobra"

	awsadapter "github.com/malphitee/ec2-network-monitor/internal/adapter/driven/aws"
	appconfig "github.com/malphitee/ec2-network-monitor/internal/adapter/driven/config"
	"github.com/malphitee/ec2-network-monitor/internal/adapter/driven/notify"
	"github.com/malphitee/ec2-network-monitor/internal/adapter/driving/httpserver"
	"github.com/malphitee/ec2-network-monitor/internal/application/usecase"
	"github.com/malphitee/ec2-network-monitor/internal/domain/repository"
	"github.com/malphitee/ec2-network-monitor/internal/shared/types"
	"github.com/malphitee/ec2-network-monitor/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd *cobra.Command
	console types.ConsoleInterface
}

// NewCLIApp creates the CLI application.
func NewCLIApp(console types.ConsoleInterface) *CLIApp {
	app := &CLIApp{console: console}

	rootCmd := &cobra.Command{
		Use:     "ec2-network-monitor",
		Short:   "EC2 network traffic daily report",
		Version: version.FormatVersion(),
		RunE:    app.runCommand,
	}
	rootCmd.SetVersionTemplate(`{{printf "EC2 Network Monitor version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("listen", "l", "", "HTTP listen address (overrides LISTEN_ADDR)")
	rootCmd.PersistentFlags().Bool("once", false, "Run a single report, push it and exit instead of serving HTTP")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// runCommand is the main entry point for the root command.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner()

	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	listen, _ := app.rootCmd.Flags().GetString("listen")
	once, _ := app.rootCmd.Flags().GetBool("once")

	cfg, err := appconfig.Load(configFile)
	if err != nil {
		return err
	}
	if listen != "" {
		cfg.ListenAddr = listen
	}
	if err := appconfig.Validate(cfg); err != nil {
		return err
	}

	ctx := context.Background()
	awsRepo, err := awsadapter.NewAWSRepository(ctx, cfg)
	if err != nil {
		return err
	}

	uc := usecase.NewReportUseCase(awsRepo, cfg, app.console, gotifySender(cfg), telegramSender(cfg))

	if once {
		result, err := uc.Run(ctx, true)
		if err != nil {
			return err
		}
		app.console.Println(result.Plain)
		return nil
	}

	if cfg.ReportCron != "" {
		scheduler := cron.New()
		if err := scheduler.AddFunc(cfg.ReportCron, func() {
			if _, err := uc.Run(context.Background(), true); err != nil {
				app.console.LogError("scheduled report failed: %s", err)
			}
		}); err != nil {
			return err
		}
		scheduler.Start()
		app.console.LogInfo("scheduled report enabled: %s", cfg.ReportCron)
	}

	return httpserver.NewServer(uc, app.console).Run(cfg.ListenAddr)
}

// gotifySender builds the Gotify notifier, or nil when its credentials are
// not configured.
func gotifySender(cfg *types.Config) repository.Notifier {
	if cfg.GotifyURL == "" || cfg.GotifyToken == "" {
		return nil
	}
	return notify.NewGotifySender(cfg.GotifyURL, cfg.GotifyToken)
}

func telegramSender(cfg *types.Config) repository.Notifier {
	if cfg.TgBotToken == "" || cfg.TgChatID == "" {
		return nil
	}
	return notify.NewTelegramSender(cfg.TgBotToken, cfg.TgChatID)
}
