package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/livp123/urlp/internal/config"
	"github.com/livp123/urlp/internal/runtime"
)

func configPath() string {
	if runtime.ConfigPath != "" {
		return runtime.ConfigPath
	}
	return config.DefaultConfigPath
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	// Short: 管理配置文件
}

// configInitCmd writes the commented default config if none exists.
// configInitCmd 在配置不存在时写入带注释的默认配置。
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath()
		created, err := config.EnsureDefaultConfig(path)
		if err != nil {
			return err
		}
		if created {
			fmt.Printf("Created %s\n", path)
		} else {
			fmt.Printf("Config already exists at %s\n", path)
		}
		return nil
	},
}

// configShowCmd prints the effective configuration after defaults apply.
// configShowCmd 打印应用默认值后的有效配置。
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cm := config.NewConfigManager(configPath())
		if err := cm.LoadConfig(); err != nil {
			return err
		}
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(cm.GetConfig())
	},
}

// configSetCmd updates a single configuration value and saves the file.
// configSetCmd 更新单个配置值并保存文件。
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Update one configuration value",
	Long: `Update one configuration value and write the file back.
Keys: base.default_scheme, base.workers, base.strict, output.format,
output.fields, output.null_value, logging.level, metrics.enabled,
metrics.port.
更新单个配置值并写回文件。`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cm := config.NewConfigManager(configPath())
		if err := cm.LoadConfig(); err != nil {
			return err
		}

		cfg := cm.GetConfig()
		if err := applyConfigValue(cfg, args[0], args[1]); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		cm.UpdateConfig(cfg)
		if err := cm.SaveConfig(); err != nil {
			return err
		}
		fmt.Printf("Set %s = %s in %s\n", args[0], args[1], configPath())
		return nil
	},
}

// applyConfigValue assigns value to the config field addressed by key.
// applyConfigValue 将 value 赋给 key 寻址的配置字段。
func applyConfigValue(cfg *config.GlobalConfig, key, value string) error {
	switch key {
	case "base.default_scheme":
		cfg.Base.DefaultScheme = value
	case "base.workers":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("base.workers: %w", err)
		}
		cfg.Base.Workers = n
	case "base.strict":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("base.strict: %w", err)
		}
		cfg.Base.Strict = b
	case "output.format":
		cfg.Output.Format = value
	case "output.fields":
		cfg.Output.Fields = value
	case "output.null_value":
		cfg.Output.NullValue = value
	case "logging.level":
		cfg.Logging.Level = value
	case "metrics.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("metrics.enabled: %w", err)
		}
		cfg.Metrics.Enabled = b
	case "metrics.port":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("metrics.port: %w", err)
		}
		cfg.Metrics.Port = n
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	RootCmd.AddCommand(configCmd)
}
