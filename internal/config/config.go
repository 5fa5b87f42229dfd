package config

import "fmt"

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	YouTube     YouTubeConfig     `yaml:"youtube"`
	Analyzer    AnalyzerConfig    `yaml:"analyzer"`
	Generator   GeneratorConfig   `yaml:"generator"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

type YouTubeConfig struct {
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
}

type AnalyzerConfig struct {
	MaxKeywords         int     `yaml:"max_keywords"`
	MaxTopics           int     `yaml:"max_topics"`
	MaxKeyPoints        int     `yaml:"max_key_points"`
	MinKeywordFrequency int     `yaml:"min_keyword_frequency"`
	MinTopicRelevance   float64 `yaml:"min_topic_relevance"`
	SummaryLength       int     `yaml:"summary_length"`
}

type GeneratorConfig struct {
	Tone     string `yaml:"tone"`
	Length   string `yaml:"length"`
	Template string `yaml:"template"`
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.YouTube.BinaryPath == "" {
		c.YouTube.BinaryPath = "yt-dlp"
	}
	if c.YouTube.Language == "" {
		c.YouTube.Language = "en"
	}
	if c.Analyzer.MaxKeywords == 0 {
		c.Analyzer.MaxKeywords = 20
	}
	if c.Analyzer.MaxTopics == 0 {
		c.Analyzer.MaxTopics = 8
	}
	if c.Analyzer.MaxKeyPoints == 0 {
		c.Analyzer.MaxKeyPoints = 10
	}
	if c.Analyzer.MinKeywordFrequency == 0 {
		c.Analyzer.MinKeywordFrequency = 1
	}
	if c.Analyzer.MinTopicRelevance == 0 {
		c.Analyzer.MinTopicRelevance = 0.05
	}
	if c.Analyzer.SummaryLength == 0 {
		c.Analyzer.SummaryLength = 3
	}
	if c.Generator.Tone == "" {
		c.Generator.Tone = "professional"
	}
	if c.Generator.Length == "" {
		c.Generator.Length = "medium"
	}

	return nil
}
