package internal

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	Host     string `env:"HOST,default=0.0.0.0"`
	Port     int    `env:"PORT,default=5000"`
	LogLevel string `env:"LOG_LEVEL,default=INFO"`

	RelayURL         string        `env:"RELAY_URL"`
	RelayOrigin      string        `env:"RELAY_ORIGIN,default=realtime-relay"`
	RelayTimeout     time.Duration `env:"RELAY_TIMEOUT,default=3s"`
	RelayMaxInFlight int           `env:"RELAY_MAX_INFLIGHT,default=256"`

	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=256"`
	PingInterval         time.Duration `env:"PING_INTERVAL,default=25s"`
	PongTimeout          time.Duration `env:"PONG_TIMEOUT,default=60s"`

	BadgerFilepath    string        `env:"BADGER_FILEPATH"`
	JournalBufferSize int           `env:"JOURNAL_BUFFER_SIZE,default=1024"`
	JournalTTL        time.Duration `env:"JOURNAL_TTL,default=24h"`

	Debug             bool          `env:"DEBUG,default=false"`
	GRPCHealthPort    int           `env:"GRPC_HEALTH_PORT,default=0"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,default=1m"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=1s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

// Load reads an optional .env file, then the environment. Variables already
// set in the environment win over the file.
func Load(dotenvFiles ...string) (Config, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("dotenv: %w", err)
	}
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("environment: %w", err)
	}
	return config, config.Validate()
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.GRPCHealthPort < 0 || c.GRPCHealthPort > 65535 {
		return fmt.Errorf("GRPC_HEALTH_PORT must be between 0 and 65535, got %d", c.GRPCHealthPort)
	}
	if c.RelayURL != "" {
		u, err := url.Parse(c.RelayURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("RELAY_URL must be an absolute http(s) url, got %q", c.RelayURL)
		}
	}
	if c.RelayTimeout <= 0 {
		return fmt.Errorf("RELAY_TIMEOUT must be positive, got %s", c.RelayTimeout)
	}
	return nil
}

func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c Config) GRPCHealthAddress() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.GRPCHealthPort))
}

func (c Config) RelayEnabled() bool {
	return c.RelayURL != ""
}
