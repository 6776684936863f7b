package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfigFromYAML 验证YAML配置能被正确加载并应用默认值
func TestLoadConfigFromYAML(t *testing.T) {
	yamlContent := `
server:
  address: ":9090"
  api_key: "secret"
embedding:
  provider: "aliyun"
  api_key: "sk-test"
  model: "text-embedding-v3"
  dimensions: 512
matcher:
  explain_top_k: 3
  suggestion_threshold: 50
  skills:
    - python
    - docker
`
	tmpDir, err := os.MkdirTemp("", "config-test")
	require.NoError(t, err, "无法创建临时目录")
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	err = os.WriteFile(configPath, []byte(yamlContent), 0644)
	require.NoError(t, err, "无法写入临时配置文件")

	config, err := LoadConfig(configPath)
	require.NoError(t, err, "加载合法配置不应返回错误")
	require.NotNil(t, config)

	assert.Equal(t, ":9090", config.Server.Address)
	assert.Equal(t, "secret", config.Server.APIKey)
	assert.Equal(t, "aliyun", config.Embedding.Provider)
	assert.Equal(t, 512, config.Embedding.Dimensions)
	assert.Equal(t, 3, config.Matcher.ExplainTopK)
	assert.Equal(t, 50.0, config.Matcher.SuggestionThreshold)
	assert.Equal(t, []string{"python", "docker"}, config.Matcher.Skills)
	// 未配置的字段应落到默认值
	assert.Equal(t, "https://dashscope.aliyuncs.com/compatible-mode/v1/embeddings", config.Embedding.BaseURL)
}

// TestLoadConfigDefaultsInTest 验证测试环境下找不到配置文件时返回默认配置
func TestLoadConfigDefaultsInTest(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err, "测试环境下缺少配置文件不应报错")
	require.NotNil(t, config)

	assert.Equal(t, ":8080", config.Server.Address)
	// 没有API key时默认使用本地hash嵌入器
	assert.Equal(t, "hash", config.Embedding.Provider)
	assert.Equal(t, 1024, config.Embedding.Dimensions)
}

// TestLoadConfigEnvOverride 验证环境变量覆盖敏感配置
func TestLoadConfigEnvOverride(t *testing.T) {
	yamlContent := `
embedding:
  api_key: "from-file"
`
	tmpDir, err := os.MkdirTemp("", "config-test-env")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	t.Setenv("EMBEDDING_API_KEY", "from-env")

	config, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "from-env", config.Embedding.APIKey, "环境变量应覆盖文件中的API key")
	// 有API key时默认provider应推断为aliyun
	assert.Equal(t, "aliyun", config.Embedding.Provider)
}
