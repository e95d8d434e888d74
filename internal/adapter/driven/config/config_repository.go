package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/malphitee/ec2-network-monitor/internal/shared/types"
)

const (
	defaultListenAddr  = ":8080"
	defaultPushChannel = types.ChannelGotify
)

// Load builds the effective configuration: defaults, then the optional
// config file, then a local .env file, then the process environment.
// Environment always wins.
func Load(filePath string) (*types.Config, error) {
	cfg := &types.Config{
		PushChannel: defaultPushChannel,
		ListenAddr:  defaultListenAddr,
	}

	if filePath != "" {
		fileCfg, err := loadConfigFile(filePath)
		if err != nil {
			return nil, err
		}
		*cfg = mergeConfig(*cfg, *fileCfg)
	}

	// Best-effort: a missing .env file is not an error.
	_ = godotenv.Load(".env")

	applyEnv(cfg)
	return cfg, nil
}

// Validate checks the settings every report run depends on.
func Validate(cfg *types.Config) error {
	if cfg.Region == "" {
		return types.ErrNoRegion
	}
	if cfg.InstanceID == "" {
		return types.ErrNoInstanceID
	}
	return nil
}

// loadConfigFile loads a TOML, YAML or JSON configuration file.
func loadConfigFile(filePath string) (*types.Config, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg types.Config
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".toml":
		if err := toml.Unmarshal(fileData, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", filepath.Ext(filePath))
	}

	return &cfg, nil
}

func mergeConfig(base, override types.Config) types.Config {
	merged := base
	setIfPresent(&merged.Region, override.Region)
	setIfPresent(&merged.AccessKeyID, override.AccessKeyID)
	setIfPresent(&merged.SecretAccessKey, override.SecretAccessKey)
	setIfPresent(&merged.InstanceID, override.InstanceID)
	setIfPresent(&merged.PushChannel, override.PushChannel)
	setIfPresent(&merged.GotifyURL, override.GotifyURL)
	setIfPresent(&merged.GotifyToken, override.GotifyToken)
	setIfPresent(&merged.TgBotToken, override.TgBotToken)
	setIfPresent(&merged.TgChatID, override.TgChatID)
	setIfPresent(&merged.ListenAddr, override.ListenAddr)
	setIfPresent(&merged.ReportCron, override.ReportCron)
	return merged
}

func applyEnv(cfg *types.Config) {
	setIfPresent(&cfg.Region, os.Getenv("AWS_REGION"))
	setIfPresent(&cfg.AccessKeyID, os.Getenv("AWS_ACCESS_KEY_ID"))
	setIfPresent(&cfg.SecretAccessKey, os.Getenv("AWS_SECRET_ACCESS_KEY"))
	setIfPresent(&cfg.InstanceID, os.Getenv("EC2_INSTANCE_ID"))
	setIfPresent(&cfg.PushChannel, os.Getenv("PUSH_CHANNEL"))
	setIfPresent(&cfg.GotifyURL, os.Getenv("GOTIFY_URL"))
	setIfPresent(&cfg.GotifyToken, os.Getenv("GOTIFY_TOKEN"))
	setIfPresent(&cfg.TgBotToken, os.Getenv("TG_BOT_TOKEN"))
	setIfPresent(&cfg.TgChatID, os.Getenv("TG_CHAT_ID"))
	setIfPresent(&cfg.ListenAddr, os.Getenv("LISTEN_ADDR"))
	setIfPresent(&cfg.ReportCron, os.Getenv("REPORT_CRON"))
}

func setIfPresent(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
