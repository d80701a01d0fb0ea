package cli

import "os"

// Config holds CLI configuration
type Config struct {
	ServerURL  string
	Session    string
	AdminToken string
	Output     string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:  getEnvOrDefault("TEAMCTL_SERVER", "http://localhost:5000"),
		Session:    os.Getenv("TEAMCTL_SESSION"),
		AdminToken: os.Getenv("TEAMCTL_ADMIN_TOKEN"),
		Output:     "text",
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
