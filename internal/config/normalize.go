package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeSession()
	c.normalizeHTTP()
	return c.normalizeLogging()
}

func (c *Config) normalizeSession() {
	c.Session.APIToken = strings.TrimSpace(c.Session.APIToken)
	if c.Session.APIToken == "" {
		if value, ok := os.LookupEnv(envAPIToken); ok {
			c.Session.APIToken = strings.TrimSpace(value)
		}
	}
	c.Session.APIURL = normalizeURL(c.Session.APIURL)
	if c.Session.APIURL == "" {
		if value, ok := os.LookupEnv(envAPIURL); ok {
			c.Session.APIURL = normalizeURL(value)
		}
	}
	if c.Session.APIURL == "" {
		c.Session.APIURL = DefaultAPIURL
	}
}

func (c *Config) normalizeHTTP() {
	c.HTTP.UserAgent = strings.TrimSpace(c.HTTP.UserAgent)
	if c.HTTP.UserAgent == "" {
		c.HTTP.UserAgent = defaultUserAgent
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if file := strings.TrimSpace(c.Logging.File); file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}

func normalizeURL(value string) string {
	return strings.TrimRight(strings.TrimSpace(value), "/")
}
