package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/Jeffail/gabs/v2"
	"github.com/joho/godotenv"
)

type Config struct {
	Version           string `json:"version"`
	FEPath            string `json:"frontend_path"`
	CommandsPath      string `json:"commands_path"`
	Dsn               string `json:"dsn"`
	Port              string `json:"port"`
	TablePrefix       string `json:"table_prefix"`
	PluginHost        string `json:"plugin_host"`
	PluginPort        int    `json:"plugin_port"`
	PluginAuthToken   string `json:"plugin_auth_token"`
	PluginTimeoutSecs int    `json:"plugin_timeout_seconds"`
}

func Read(path string) (*Config, error) {
	parsed, err := gabs.ParseJSONFile(path)
	if err != nil {
		return nil, err
	}

	dsn, ok := parsed.Path("db.dsn").Data().(string)
	if !ok {
		return nil, errors.New("error dsn cast to string")
	}

	port, ok := parsed.Path("port").Data().(string)
	if !ok {
		return nil, errors.New("error port cast to string")
	}

	fe, ok := parsed.Path("frontend_path").Data().(string)
	if !ok {
		return nil, errors.New("error frontend path cast to string")
	}

	version, ok := parsed.Path("version").Data().(string)
	if !ok {
		return nil, errors.New("error version cast to string")
	}

	cfg := &Config{
		Version:           version,
		FEPath:            fe,
		CommandsPath:      "./commands.json",
		Dsn:               dsn,
		Port:              port,
		TablePrefix:       "kawe_",
		PluginHost:        "127.0.0.1",
		PluginPort:        8080,
		PluginTimeoutSecs: 10,
	}

	if v, ok := parsed.Path("commands_path").Data().(string); ok && v != "" {
		cfg.CommandsPath = v
	}
	if v, ok := parsed.Path("db.table_prefix").Data().(string); ok && v != "" {
		cfg.TablePrefix = v
	}
	if v, ok := parsed.Path("plugin.host").Data().(string); ok && v != "" {
		cfg.PluginHost = v
	}
	if v, ok := parsed.Path("plugin.port").Data().(float64); ok {
		cfg.PluginPort = int(v)
	}
	if v, ok := parsed.Path("plugin.auth_token").Data().(string); ok {
		cfg.PluginAuthToken = v
	}
	if v, ok := parsed.Path("plugin.timeout_seconds").Data().(float64); ok && v > 0 {
		cfg.PluginTimeoutSecs = int(v)
	}

	cfg.applyEnv()

	return cfg, nil
}

// applyEnv lets deployments override cfg.json without editing it. A .env file
// next to the binary is honored when present.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("DB_DSN"); v != "" {
		c.Dsn = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("FRONTEND_PATH"); v != "" {
		c.FEPath = v
	}
	if v := os.Getenv("TABLE_PREFIX"); v != "" {
		c.TablePrefix = v
	}
	if v := os.Getenv("PLUGIN_HTTP_HOST"); v != "" {
		c.PluginHost = v
	}
	if v := os.Getenv("PLUGIN_HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.PluginPort = port
		}
	}
	if v := os.Getenv("PLUGIN_HTTP_AUTH_TOKEN"); v != "" {
		c.PluginAuthToken = v
	}
}
