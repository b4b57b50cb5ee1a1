package config

const (
	// DefaultConfigPath is the standard location for the urlp configuration file.
	// DefaultConfigPath 是 urlp 配置文件的标准位置。
	DefaultConfigPath = "/etc/urlp/config.yaml"

	// DefaultLogPath is the default log file location when file logging is enabled.
	// DefaultLogPath 是启用文件日志时的默认日志文件位置。
	DefaultLogPath = "/var/log/urlp/urlp.log"

	// DefaultMetricsPort is the default port for the serve-mode HTTP server.
	// DefaultMetricsPort 是 serve 模式 HTTP 服务器的默认端口。
	DefaultMetricsPort = 9811
)
