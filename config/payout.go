package config

import "time"

// PayoutConfig for the gateway that receives outbound transfers
type PayoutConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}
