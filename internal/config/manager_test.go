package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadGlobalConfigMissing tests that a missing file yields defaults
// TestLoadGlobalConfigMissing 测试缺失文件时返回默认配置
func TestLoadGlobalConfigMissing(t *testing.T) {
	cfg, err := LoadGlobalConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "https", cfg.Base.DefaultScheme)
	assert.Equal(t, "plain", cfg.Output.Format)
	assert.Equal(t, DefaultMetricsPort, cfg.Metrics.Port)
}

// TestLoadGlobalConfig tests loading and overriding defaults
// TestLoadGlobalConfig 测试加载并覆盖默认值
func TestLoadGlobalConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `base:
  default_scheme: "http"
  workers: 4
  strict: true
output:
  format: "jsonl"
  fields: "domain,path"
domain:
  extra_tlds: ["dev.local"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := LoadGlobalConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http", cfg.Base.DefaultScheme)
	assert.Equal(t, 4, cfg.Base.Workers)
	assert.True(t, cfg.Base.Strict)
	assert.Equal(t, "jsonl", cfg.Output.Format)
	assert.Equal(t, []string{"dev.local"}, cfg.Domain.ExtraTLDs)
	// Untouched sections keep their defaults
	// 未覆盖的部分保留默认值
	assert.Equal(t, `\N`, cfg.Output.NullValue)
}

// TestLoadGlobalConfigInvalid tests validation failures
// TestLoadGlobalConfigInvalid 测试验证失败的情况
func TestLoadGlobalConfigInvalid(t *testing.T) {
	cases := map[string]string{
		"bad format":  "output:\n  format: \"xml\"\n",
		"bad fields":  "output:\n  fields: \"domain,bogus\"\n",
		"bad workers": "base:\n  workers: -1\n",
		"bad port":    "metrics:\n  port: 70000\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(data), 0600))
			_, err := LoadGlobalConfig(path)
			assert.Error(t, err)
		})
	}
}

// TestDefaultTemplateParses tests that the shipped template is valid YAML
// TestDefaultTemplateParses 测试内置模板是有效的 YAML
func TestDefaultTemplateParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	created, err := EnsureDefaultConfig(path)
	require.NoError(t, err)
	assert.True(t, created)

	cfg, err := LoadGlobalConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https", cfg.Base.DefaultScheme)
	assert.Equal(t, `\N`, cfg.Output.NullValue)

	// Second call must not overwrite
	// 第二次调用不得覆盖
	created, err = EnsureDefaultConfig(path)
	require.NoError(t, err)
	assert.False(t, created)
}

// TestConfigManager tests the manager round trip
// TestConfigManager 测试管理器的完整往返
func TestConfigManager(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cm := NewConfigManager(path)

	require.NoError(t, cm.LoadConfig())
	cfg := cm.GetConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "https", cfg.Base.DefaultScheme)

	cfg.Base.DefaultScheme = "http"
	cm.UpdateConfig(cfg)
	require.NoError(t, cm.SaveConfig())

	cm2 := NewConfigManager(path)
	require.NoError(t, cm2.LoadConfig())
	assert.Equal(t, "http", cm2.GetConfig().Base.DefaultScheme)
	assert.Equal(t, DefaultMetricsPort, cm2.GetMetricsConfig().Port)
}

// TestConfigManagerReload tests picking up on-disk changes
// TestConfigManagerReload 测试重新加载磁盘上的变更
func TestConfigManagerReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cm := NewConfigManager(path)

	require.NoError(t, cm.LoadConfig())
	assert.Empty(t, cm.GetConfig().Domain.ExtraTLDs)

	data := "domain:\n  extra_tlds: [\"dev.local\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	require.NoError(t, cm.LoadConfig())
	assert.Equal(t, []string{"dev.local"}, cm.GetConfig().Domain.ExtraTLDs)
}

// TestConfigManagerCopy tests that GetConfig returns a copy
// TestConfigManagerCopy 测试 GetConfig 返回副本
func TestConfigManagerCopy(t *testing.T) {
	cm := NewConfigManager(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, cm.LoadConfig())

	cfg := cm.GetConfig()
	cfg.Base.Workers = 99
	assert.Equal(t, 0, cm.GetConfig().Base.Workers)
}
