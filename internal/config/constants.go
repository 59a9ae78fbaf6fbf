package config

import (
	"fmt"
	"net/url"
)

const (
	DEFAULT_API_URL    = "http://localhost:8000/api/v1"
	DEFAULT_LOG_LEVEL  = "info"
	DEFAULT_LOG_FORMAT = "text"
	ENV_PREFIX         = "ORACLE"
	ENV_API_URL        = "API_URL"
	ENV_LOG_LEVEL      = "LOG_LEVEL"
	ENV_LOG_FILE       = "LOG_FILE"
	ENV_LOG_FORMAT     = "LOG_FORMAT"
)

func GetEnvWithPrefix(env string) string {
	return fmt.Sprintf("%s_%s", ENV_PREFIX, env)
}

// ValidateBaseURL accepts absolute http and https URLs only.
func ValidateBaseURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("api url must be specified")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("api url is invalid: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api url '%s' must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("api url '%s' has no host", raw)
	}
	return nil
}
