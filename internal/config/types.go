package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/livp123/urlp/internal/format"
	"github.com/livp123/urlp/internal/utils/fileutil"
	"github.com/livp123/urlp/internal/utils/logger"
)

// DefaultConfigTemplate defines the default configuration file structure with bilingual comments.
// It is written verbatim when a new config file is initialized so the documentation survives.
const DefaultConfigTemplate = `# urlp Configuration File / urlp 配置文件
#

# Base Configuration / 基础配置
base:
  # Default Scheme: prepended to inputs without a scheme (e.g. "example.com").
  # Empty disables the rewrite and such inputs fail to parse.
  # 默认协议：为缺少协议的输入添加前缀（例如 "example.com"）。
  # 为空则禁用重写，此类输入将解析失败。
  default_scheme: "https"

  # Workers: parallel parse workers. 0 means one per CPU.
  # 工作协程数：并行解析的工作协程数量。0 表示每个 CPU 一个。
  workers: 0

  # Strict: abort on the first malformed URL instead of skipping it.
  # 严格模式：遇到第一个畸形 URL 时中止，而不是跳过。
  strict: false

# Output Configuration / 输出配置
output:
  # Format: plain, tsv, csv, json, jsonl, sql or custom.
  # 输出格式：plain、tsv、csv、json、jsonl、sql 或 custom。
  format: "plain"

  # Fields: comma-separated field list. Empty selects all fields.
  # 字段：逗号分隔的字段列表。为空则选择所有字段。
  fields: ""

  # Null Value: placeholder for absent fields in tabular output.
  # 空值占位符：表格输出中缺失字段的占位符。
  null_value: "\\N"

# Domain Configuration / 域名配置
domain:
  # Extra TLDs: additional multi-part public suffixes (e.g. "dev.example").
  # 额外顶级域：附加的多段公共后缀（例如 "dev.example"）。
  extra_tlds: []

# Logging Configuration / 日志配置
logging:
  enabled: false
  level: "info"
  path: "/var/log/urlp/urlp.log"
  max_size: 10
  max_backups: 3
  max_age: 30
  compress: true

# Metrics Configuration / 指标配置
metrics:
  # Enabled: collect parse counters.
  # 是否启用：收集解析计数器。
  enabled: false

  # Server Enabled: expose /metrics and the parse API over HTTP (serve mode).
  # 服务器开关：通过 HTTP 暴露 /metrics 和解析 API（serve 模式）。
  server_enabled: false

  # Port: HTTP listen port for serve mode.
  # 端口：serve 模式的 HTTP 监听端口。
  port: 9811
`

// GlobalConfig is the root of the YAML configuration.
// GlobalConfig 是 YAML 配置的根。
type GlobalConfig struct {
	Base    BaseConfig           `yaml:"base"`
	Output  OutputConfig         `yaml:"output"`
	Domain  DomainConfig         `yaml:"domain"`
	Logging logger.LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig        `yaml:"metrics"`
}

// BaseConfig controls parsing behavior.
// BaseConfig 控制解析行为。
type BaseConfig struct {
	DefaultScheme string `yaml:"default_scheme"`
	Workers       int    `yaml:"workers"`
	Strict        bool   `yaml:"strict"`
}

// OutputConfig controls default rendering.
// OutputConfig 控制默认输出。
type OutputConfig struct {
	Format    string `yaml:"format"`
	Fields    string `yaml:"fields"`
	NullValue string `yaml:"null_value"`
}

// DomainConfig extends the built-in public suffix heuristics.
// DomainConfig 扩展内置的公共后缀启发式规则。
type DomainConfig struct {
	ExtraTLDs []string `yaml:"extra_tlds"`
}

// MetricsConfig controls counters and the serve-mode HTTP endpoint.
// MetricsConfig 控制计数器和 serve 模式的 HTTP 端点。
type MetricsConfig struct {
	Enabled       bool `yaml:"enabled"`
	ServerEnabled bool `yaml:"server_enabled"`
	Port          int  `yaml:"port"`
}

// Default returns a GlobalConfig populated with the shipped defaults.
// Default 返回填充了内置默认值的 GlobalConfig。
func Default() *GlobalConfig {
	return &GlobalConfig{
		Base: BaseConfig{
			DefaultScheme: "https",
			Workers:       0,
			Strict:        false,
		},
		Output: OutputConfig{
			Format:    "plain",
			NullValue: `\N`,
		},
		Logging: logger.LoggingConfig{
			Enabled:    false,
			Level:      "info",
			Path:       DefaultLogPath,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     30,
			Compress:   true,
		},
		Metrics: MetricsConfig{
			Enabled:       false,
			ServerEnabled: false,
			Port:          DefaultMetricsPort,
		},
	}
}

// Validate checks the configuration for values that cannot work.
// Validate 检查配置中无法工作的值。
func (c *GlobalConfig) Validate() error {
	if c.Base.Workers < 0 {
		return fmt.Errorf("base.workers must not be negative, got %d", c.Base.Workers)
	}
	if c.Output.Format != "" && c.Output.Format != "custom" {
		if _, err := format.ParseFormat(c.Output.Format); err != nil {
			return fmt.Errorf("output.format: %w", err)
		}
	}
	if c.Output.Fields != "" {
		if _, err := format.ParseFields(c.Output.Fields); err != nil {
			return fmt.Errorf("output.fields: %w", err)
		}
	}
	if c.Metrics.Port < 0 || c.Metrics.Port > 65535 {
		return fmt.Errorf("metrics.port out of range: %d", c.Metrics.Port)
	}
	return nil
}

// LoadGlobalConfig loads the configuration from a YAML file.
// A missing file is not an error: the defaults are returned instead, so the
// CLI works without any configuration at all.
// LoadGlobalConfig 从 YAML 文件加载配置。
// 文件缺失不算错误：此时返回默认配置，CLI 无需任何配置即可工作。
func LoadGlobalConfig(path string) (*GlobalConfig, error) {
	cfg := Default()

	safePath := filepath.Clean(path) // Sanitize path to prevent directory traversal
	data, err := os.ReadFile(safePath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// SaveGlobalConfig writes the configuration atomically.
// SaveGlobalConfig 原子化写入配置。
func SaveGlobalConfig(path string, cfg *GlobalConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return fileutil.AtomicWriteFile(path, data, 0600)
}

// EnsureDefaultConfig writes the commented default template if no config
// file exists yet. Returns true when a file was created.
// EnsureDefaultConfig 在配置文件不存在时写入带注释的默认模板。
// 创建了文件时返回 true。
func EnsureDefaultConfig(path string) (bool, error) {
	safePath := filepath.Clean(path)
	if _, err := os.Stat(safePath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(safePath), 0755); err != nil {
		return false, err
	}
	if err := fileutil.AtomicWriteFile(safePath, []byte(DefaultConfigTemplate), 0600); err != nil {
		return false, err
	}
	return true, nil
}
