package config

import (
	"fmt"
	"github.com/spf13/viper"
	"path"
	"strings"
)

// Config for the whole application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	MySQL    MySQLConfig    `mapstructure:"mysql"`
	Jaeger   JaegerConfig   `mapstructure:"jaeger"`
	Payout   PayoutConfig   `mapstructure:"payout"`
	Campaign CampaignConfig `mapstructure:"campaign"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.http.host", "0.0.0.0")
	v.SetDefault("server.http.port", 10080)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)

	v.SetDefault("mysql.max_open_conns", 20)
	v.SetDefault("mysql.max_idle_conns", 5)

	v.SetDefault("payout.timeout", "10s")

	v.SetDefault("campaign.base_unit_exponent", 18)
	v.SetDefault("campaign.idempotency_cache_size", 16*1024*1024)
}

func loadConfigFile(dir string, name string) Config {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("yml")
	v.AddConfigPath(dir)

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		panic(err)
	}

	var conf Config
	err = v.Unmarshal(&conf)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Config: %+v\n", conf.redacted())
	return conf
}

// Load reads config.yml from the working directory
func Load() Config {
	return loadConfigFile(".", "config")
}

// LoadTestConfig reads config.test.yml from the project root directory
func LoadTestConfig(rootDir string) Config {
	return loadConfigFile(path.Clean(rootDir), "config.test")
}

func (c Config) redacted() Config {
	c.MySQL.Password = "***"
	return c
}
