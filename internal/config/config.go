package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/EgorLis/obs-mcp/internal/logging"
	"github.com/EgorLis/obs-mcp/internal/obsclient"
)

type OBS struct {
	URL              string        `mapstructure:"url"`
	Password         string        `mapstructure:"password"`
	ChallengeAuth    bool          `mapstructure:"challenge_auth"`
	RequestTimeout   time.Duration `mapstructure:"request_timeout"`
	ProbeTimeout     time.Duration `mapstructure:"probe_timeout"`
	HandshakeTimeout time.Duration `mapstructure:"handshake_timeout"`
	IdleProbeAfter   time.Duration `mapstructure:"idle_probe_after"`
}

type HTTP struct {
	// Addr — пусто: MCP только по stdio, HTTP не поднимается.
	Addr string `mapstructure:"addr"`
}

type Monitor struct {
	// Interval — 0 выключает опрос выходов.
	Interval time.Duration `mapstructure:"interval"`
}

type Config struct {
	OBS     OBS            `mapstructure:"obs"`
	Log     logging.Config `mapstructure:"log"`
	HTTP    HTTP           `mapstructure:"http"`
	Monitor Monitor        `mapstructure:"monitor"`
}

// ClientConfig — настройки obsclient без логгера и метрик.
func (c *Config) ClientConfig() obsclient.Config {
	return obsclient.Config{
		URL:              c.OBS.URL,
		Password:         c.OBS.Password,
		ChallengeAuth:    c.OBS.ChallengeAuth,
		RequestTimeout:   c.OBS.RequestTimeout,
		ProbeTimeout:     c.OBS.ProbeTimeout,
		HandshakeTimeout: c.OBS.HandshakeTimeout,
		IdleProbeAfter:   c.OBS.IdleProbeAfter,
	}
}

// env-переменные исторических имён
var envAliases = map[string][]string{
	"obs.url":      {"OBS_WEBSOCKET_URL"},
	"obs.password": {"OBS_WEBSOCKET_PASSWORD", "OBS_WS_PASSWORD"},
}

// flag → ключ конфига
var flagKeys = map[string]string{
	"obs-url":      "obs.url",
	"obs-password": "obs.password",
	"log-level":    "log.level",
	"log-file":     "log.file",
	"http-addr":    "http.addr",
	"monitor":      "monitor.interval",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("obs.url", obsclient.DefaultURL)
	v.SetDefault("obs.password", "")
	v.SetDefault("obs.challenge_auth", false)
	v.SetDefault("obs.request_timeout", obsclient.DefaultRequestTimeout)
	v.SetDefault("obs.probe_timeout", obsclient.DefaultProbeTimeout)
	v.SetDefault("obs.handshake_timeout", obsclient.DefaultHandshakeTimeout)
	v.SetDefault("obs.idle_probe_after", obsclient.DefaultIdleProbeAfter)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 14)
	v.SetDefault("log.compress", false)

	v.SetDefault("http.addr", "")
	v.SetDefault("monitor.interval", time.Duration(0))
}

// Load — приоритет: флаги > env > файл > значения по умолчанию.
// path может быть пустым; flags может быть nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("OBSMCP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range envAliases {
		if err := v.BindEnv(append([]string{key, "OBSMCP_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}, names...)...); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.OBS.URL)
	if err != nil {
		return fmt.Errorf("obs.url: %w", err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("obs.url: scheme must be ws or wss, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("obs.url: missing host")
	}
	for name, d := range map[string]time.Duration{
		"obs.request_timeout":   c.OBS.RequestTimeout,
		"obs.probe_timeout":     c.OBS.ProbeTimeout,
		"obs.handshake_timeout": c.OBS.HandshakeTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %v", name, d)
		}
	}
	if c.OBS.IdleProbeAfter < 0 {
		return fmt.Errorf("obs.idle_probe_after must not be negative, got %v", c.OBS.IdleProbeAfter)
	}
	if c.Monitor.Interval < 0 {
		return fmt.Errorf("monitor.interval must not be negative, got %v", c.Monitor.Interval)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
