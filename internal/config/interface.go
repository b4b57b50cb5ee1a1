package config

// Configurable represents the interface for configuration management
// Configurable 表示配置管理的接口
type Configurable interface {
	LoadConfig() error
	SaveConfig() error
	GetConfig() *GlobalConfig
	UpdateConfig(*GlobalConfig)
	GetMetricsConfig() *MetricsConfig
}

// Compile-time check that ConfigManager satisfies Configurable.
// 编译期检查 ConfigManager 是否满足 Configurable。
var _ Configurable = (*ConfigManager)(nil)
