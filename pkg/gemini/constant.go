package gemini

import "time"

const (
	DefaultModel   = "gemini-2.0-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second

	// headerAPIKey keeps the key out of URLs, which end up in transport errors and logs.
	headerAPIKey = "x-goog-api-key"
)
