package config

import "time"

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT" envDefault:"3001"`
	MonPort     int    `env:"MON_PORT" envDefault:"8888"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"postback-relay"`

	// TimewallSecret is the shared secret appended to every postback signature.
	TimewallSecret string `env:"TIMEWALL"`

	TelegramToken          string        `env:"TELEGRAM_TOKEN"`
	TelegramGroupID        string        `env:"TELEGRAM_GROUP_ID"`
	TelegramAPIEndpoint    string        `env:"TELEGRAM_API_ENDPOINT" envDefault:"https://api.telegram.org/bot%s/%s"`
	TelegramReconnectDelay time.Duration `env:"TELEGRAM_RECONNECT_DELAY" envDefault:"10s"`

	EnableTestPostback bool          `env:"ENABLE_TEST_POSTBACK"`
	ReplayWindow       time.Duration `env:"REPLAY_WINDOW" envDefault:"24h"`
}

// SecretConfigured reports whether postback signatures can be verified.
func (s *Settings) SecretConfigured() bool {
	return s.TimewallSecret != ""
}

