package config

import (
	"encoding/json"
	"os"

	"github.com/joseotaviopc/api-ari/internal/flagx"
	"github.com/joseotaviopc/api-ari/internal/timex"
)

// JSONConfig mirrors Config for decoding config files. Durations accept
// "15m"-style strings through timex.Duration. Only keys present in the file
// override earlier values, hence the pointers.
type JSONConfig struct {
	EndpointAddrHTTP            *string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC            *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	BcryptCost                  *int            `json:"bcrypt_cost"`
	DefaultBaseID               *int64          `json:"default_base_id"`
	RedisAddr                   *string         `json:"redis_addr"`
	RedisPassword               *string         `json:"redis_password"`
	LogLevel                    *string         `json:"log_level"`
	LogFormat                   *string         `json:"log_format"`
	AllowedOrigins              []string        `json:"allowed_origins"`
	SwaggerHost                 *string         `json:"swagger_host"`
	AutoMigrate                 *bool           `json:"auto_migrate"`
}

// parseJSON loads the file named by -c/-config, if any, into config.
func parseJSON(config *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JSONConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		return err
	}

	c.apply(config)
	return nil
}

func (c *JSONConfig) apply(config *Config) {
	setIf(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setIf(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.SecretKey, c.SecretKey)
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	setIf(&config.BcryptCost, c.BcryptCost)
	setIf(&config.DefaultBaseID, c.DefaultBaseID)
	setIf(&config.RedisAddr, c.RedisAddr)
	setIf(&config.RedisPassword, c.RedisPassword)
	setIf(&config.LogLevel, c.LogLevel)
	setIf(&config.LogFormat, c.LogFormat)
	if c.AllowedOrigins != nil {
		config.AllowedOrigins = c.AllowedOrigins
	}
	setIf(&config.SwaggerHost, c.SwaggerHost)
	setIf(&config.AutoMigrate, c.AutoMigrate)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
