package appconf

import "strings"

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (env Environment) String() string {
	switch env {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the -env command line value to an Environment.
// Unrecognized values fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "production", "prod":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

// Config holds all the configuration settings for our Application.
type Config struct {
	Port      int
	Env       Environment
	ApiKeys   []string
	RateLimit int // requests per second per API key
	Verbose   bool
	Metrics   bool
}

// ParseAPIKeys splits a comma separated list of API keys, dropping blanks.
func ParseAPIKeys(flagValue string) []string {
	var keys []string
	for _, key := range strings.Split(flagValue, ",") {
		key = strings.TrimSpace(key)
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
