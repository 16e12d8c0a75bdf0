package deepseek

import "time"

const (
	// DefaultBaseURL is the default DeepSeek API endpoint
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "deepseek-chat"

	// DefaultTimeout bounds a single HTTP round trip
	DefaultTimeout = 60 * time.Second

	// QwenBaseURL is DashScope's OpenAI-compatible endpoint; the same client serves Qwen models.
	QwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
)
