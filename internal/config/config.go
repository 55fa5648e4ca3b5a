// Package config binds the process environment to the run configuration.
package config

import (
	"fmt"
	"time"

	env "github.com/Netflix/go-env"
)

// Config is the full configuration surface. The two API credentials are
// required at startup; everything else defaults to the production Huggy and
// OpenAI settings.
type Config struct {
	HuggyAPIKey  string `env:"HUGGY_API_KEY,required=true"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY,required=true"`

	OpenAIModel  string `env:"OPENAI_MODEL,default=gpt-3.5-turbo-0125"`
	HuggyBaseURL string `env:"HUGGY_BASE_URL,default=https://api.huggy.io/v2"`
	ReportPath   string `env:"REPORT_PATH,default=chats_analysis.csv"`
	LogLevel     string `env:"LOG_LEVEL,default=info"`

	// Pagination throttle. The delays are assumed to match the Huggy rate
	// limit; change them only against a documented limit.
	MaxPages         int           `env:"MAX_PAGES,default=1048"`
	ChatPageDelay    time.Duration `env:"CHAT_PAGE_DELAY,default=3s"`
	MessagePageDelay time.Duration `env:"MESSAGE_PAGE_DELAY,default=2s"`
	ChatPause        time.Duration `env:"CHAT_PAUSE,default=3s"`

	// BotNameMarker excludes platform accounts from agent detection.
	BotNameMarker string `env:"BOT_NAME_MARKER,default=Treeunfe"`

	// StatusPort serves run progress over HTTP; 0 disables the server.
	StatusPort int `env:"STATUS_PORT,default=8760"`

	// DatabaseURL enables the optional Postgres sink when set.
	DatabaseURL string `env:"DATABASE_URL"`

	// NatsURL enables the optional run-event notifier when set.
	NatsURL   string `env:"NATS_URL"`
	NatsToken string `env:"NATS_TOKEN"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
