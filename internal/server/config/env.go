package config

import (
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// parseEnv overlays variables named by the `env` struct tags. Unset
// variables leave the current value alone. PORT, when set and HTTP_ADDR is
// not, binds the HTTP server to all interfaces on that port.
func parseEnv(config *Config) error {
	if err := cleanenv.ReadEnv(config); err != nil {
		return err
	}

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" && os.Getenv("HTTP_ADDR") == "" {
		config.EndpointAddrHTTP = ":" + port
	}
	return nil
}
