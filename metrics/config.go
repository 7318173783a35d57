package metrics

import (
	"fmt"
	"net"
)

// Config contains the configuration for the metric collection.
type Config struct {
	Enabled bool   `toml:",omitempty"`
	HTTP    string `toml:",omitempty"`
	Port    int    `toml:",omitempty"`
}

// DefaultConfig is the default config for metrics used in zmlstake.
var DefaultConfig = Config{
	Enabled: false,
	HTTP:    "127.0.0.1",
	Port:    6060,
}

// Addr returns the listen address of the metrics endpoint.
func (c Config) Addr() string {
	return net.JoinHostPort(c.HTTP, fmt.Sprintf("%d", c.Port))
}
