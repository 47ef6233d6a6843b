package config

import "fmt"

// ServerListen for configuring host and port
type ServerListen struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// ServerConfig ...
type ServerConfig struct {
	HTTP ServerListen `mapstructure:"http"`
}

// ListenString for net.Listen / http.Server Addr
func (s ServerListen) ListenString() string {
	return fmt.Sprintf(":%d", s.Port)
}

// String ...
func (s ServerListen) String() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
