package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// RELAYCTL_ADDR is the base url of a running relay
	Addr    string        `envconfig:"RELAYCTL_ADDR" default:"http://localhost:5000"`
	Timeout time.Duration `envconfig:"RELAYCTL_TIMEOUT" default:"5s"`
	// RELAYCTL_COLOURS enables colorized headers
	Colours bool `envconfig:"RELAYCTL_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
