package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-match-go/internal/logger"

	"gopkg.in/yaml.v3"
)

// EmbeddingConfig 嵌入服务配置 (OpenAI兼容端点)
type EmbeddingConfig struct {
	// Provider 嵌入后端: "aliyun" 使用远程API, "hash" 使用本地确定性嵌入器
	Provider   string `yaml:"provider"`
	APIKey     string `yaml:"api_key"`
	Model      string `yaml:"model"`
	Dimensions int    `yaml:"dimensions"`
	BaseURL    string `yaml:"base_url"`
}

// ServerConfig HTTP服务器配置
type ServerConfig struct {
	Address string `yaml:"address"` // 例如 ":8080"
	// APIKey 非空时启用 /api/v1/match 路由组的 keyauth 鉴权
	APIKey string `yaml:"api_key"`
}

// MatcherConfig 匹配管线配置
type MatcherConfig struct {
	// ExplainTopK 解释器返回的句子数，<=0 时使用默认值5
	ExplainTopK int `yaml:"explain_top_k"`
	// SuggestionThreshold 章节得分建议阈值，<=0 时使用默认值40
	SuggestionThreshold float64 `yaml:"suggestion_threshold"`
	// Skills 技能词表，为空时使用内置词表
	Skills []string `yaml:"skills"`
}

// TracingConfig OpenTelemetry导出配置
type TracingConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"` // OTLP gRPC端点，例如 "localhost:4317"
}

// Config 应用程序配置
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Matcher   MatcherConfig   `yaml:"matcher"`
	Tracing   TracingConfig   `yaml:"tracing"`
	Logger    logger.Config   `yaml:"logger"`
}

// LoadConfig 加载配置文件。configPath为空时按常用路径搜索；
// 测试环境下找不到文件时返回默认配置而不报错
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		searchPaths := []string{
			"config.yaml",
			"internal/config/config.yaml",
		}
		if workDir, err := os.Getwd(); err == nil {
			for _, root := range []string{workDir, filepath.Join(workDir, ".."), filepath.Join(workDir, "..", "..")} {
				searchPaths = append(searchPaths, filepath.Join(root, "config.yaml"))
			}
		}
		for _, path := range searchPaths {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}
		if configPath == "" {
			if inTestEnv() {
				return createDefaultConfig(), nil
			}
			configPath = "config.yaml"
		}
	}

	if _, err := os.Stat(configPath); err != nil {
		if inTestEnv() {
			return createDefaultConfig(), nil
		}
		return nil, fmt.Errorf("配置文件不存在: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 从环境变量覆盖敏感配置（如果存在）
	if envKey := os.Getenv("EMBEDDING_API_KEY"); envKey != "" {
		config.Embedding.APIKey = envKey
	}
	if envURL := os.Getenv("EMBEDDING_BASE_URL"); envURL != "" {
		config.Embedding.BaseURL = envURL
	}
	if envKey := os.Getenv("SERVER_API_KEY"); envKey != "" {
		config.Server.APIKey = envKey
	}

	applyDefaults(&config)
	return &config, nil
}

// inTestEnv 判断当前是否运行在 go test 进程内
func inTestEnv() bool {
	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			return true
		}
	}
	return false
}

func applyDefaults(config *Config) {
	if config.Server.Address == "" {
		config.Server.Address = ":8080"
	}
	if config.Embedding.Provider == "" {
		if config.Embedding.APIKey != "" {
			config.Embedding.Provider = "aliyun"
		} else {
			config.Embedding.Provider = "hash"
		}
	}
	if config.Embedding.Model == "" {
		config.Embedding.Model = "text-embedding-v3"
	}
	if config.Embedding.Dimensions == 0 {
		config.Embedding.Dimensions = 1024
	}
	if config.Embedding.BaseURL == "" {
		config.Embedding.BaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1/embeddings"
	}
	if config.Logger.Level == "" {
		config.Logger.Level = "info"
	}
	if config.Logger.Format == "" {
		config.Logger.Format = "json"
	}
}

// 创建一个默认配置，用于测试环境
func createDefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)
	config.Logger.Level = "debug"
	config.Logger.Format = "pretty"
	return config
}
