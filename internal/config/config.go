package config

import (
	"net/http"
	"time"

	"github.com/spf13/viper"
)

const (
	SessionDriverBolt   = "bolt"
	SessionDriverRedis  = "redis"
	SessionDriverMemory = "memory"
)

type ServerConfig struct {
	Port           string
	Handler        http.Handler
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	Driver        string
	Path          string
	RedisAddr     string
	RedisPassword string
}

type Config struct {
	API          APIConfig
	Session      SessionConfig
	Port         string
	ClientOrigin string
}

// Load reads the typed config from v. Values missing from app.yaml fall back
// to defaults; the API origin and redis settings may be overridden from the
// environment.
func Load(v *viper.Viper) Config {
	v.SetDefault("api.base_url", "http://localhost:5000")
	v.SetDefault("api.timeout", 0)
	v.SetDefault("session.driver", SessionDriverBolt)
	v.SetDefault("session.path", "session.db")
	v.SetDefault("app.port", "8090")
	v.SetDefault("client.origin", "http://localhost:3000")

	_ = v.BindEnv("api.base_url", "BLOG_API_BASE_URL")
	_ = v.BindEnv("session.redis_addr", "REDIS_ADDR")
	_ = v.BindEnv("session.redis_password", "REDIS_PASSWORD")

	return Config{
		API: APIConfig{
			BaseURL: v.GetString("api.base_url"),
			Timeout: v.GetDuration("api.timeout"),
		},
		Session: SessionConfig{
			Driver:        v.GetString("session.driver"),
			Path:          v.GetString("session.path"),
			RedisAddr:     v.GetString("session.redis_addr"),
			RedisPassword: v.GetString("session.redis_password"),
		},
		Port:         v.GetString("app.port"),
		ClientOrigin: v.GetString("client.origin"),
	}
}
