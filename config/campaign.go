package config

// CampaignConfig ...
type CampaignConfig struct {
	BaseUnitExponent     int32 `mapstructure:"base_unit_exponent"`
	IdempotencyCacheSize int   `mapstructure:"idempotency_cache_size"`
}
