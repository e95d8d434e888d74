package types

// Push channel selector values, as accepted in PUSH_CHANNEL.
const (
	ChannelGotify   = "1"
	ChannelTelegram = "2"
	ChannelBoth     = "0"
)

// Config represents the application configuration. Values can be loaded from
// a TOML, YAML or JSON file; environment variables always take precedence.
type Config struct {
	Region          string `json:"region" yaml:"region" toml:"region"`
	AccessKeyID     string `json:"access_key_id" yaml:"access_key_id" toml:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key" yaml:"secret_access_key" toml:"secret_access_key"`
	InstanceID      string `json:"instance_id" yaml:"instance_id" toml:"instance_id"`

	// PushChannel selects the notification targets: "1" Gotify, "2"
	// Telegram, "0" both. Any other value disables pushing.
	PushChannel string `json:"push_channel" yaml:"push_channel" toml:"push_channel"`

	GotifyURL   string `json:"gotify_url" yaml:"gotify_url" toml:"gotify_url"`
	GotifyToken string `json:"gotify_token" yaml:"gotify_token" toml:"gotify_token"`

	TgBotToken string `json:"tg_bot_token" yaml:"tg_bot_token" toml:"tg_bot_token"`
	TgChatID   string `json:"tg_chat_id" yaml:"tg_chat_id" toml:"tg_chat_id"`

	// ListenAddr is the HTTP listen address, e.g. ":8080".
	ListenAddr string `json:"listen_addr" yaml:"listen_addr" toml:"listen_addr"`

	// ReportCron, when set, schedules a report push with the given cron
	// expression in addition to the HTTP trigger.
	ReportCron string `json:"report_cron" yaml:"report_cron" toml:"report_cron"`
}

// WantsGotify reports whether the Gotify channel is selected.
func (c *Config) WantsGotify() bool {
	return c.PushChannel == ChannelGotify || c.PushChannel == ChannelBoth
}

// WantsTelegram reports whether the Telegram channel is selected.
func (c *Config) WantsTelegram() bool {
	return c.PushChannel == ChannelTelegram || c.PushChannel == ChannelBoth
}
