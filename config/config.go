package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	OIDC struct {
		// Issuer is the base URL of the identity provider, e.g.
		// https://dev-123456.okta.com/oauth2/default
		Issuer string `mapstructure:"issuer"`
		// Audience is enforced only when non-empty.
		Audience string `mapstructure:"audience"`
	} `mapstructure:"oidc"`
	CORS struct {
		// AllowedOrigins is a comma-separated allow-list.
		AllowedOrigins string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
	Transacts struct {
		PageSize    int `mapstructure:"page_size"`
		MaxPageSize int `mapstructure:"max_page_size"`
	} `mapstructure:"transacts"`
}

var AppConfig Config

// AllowedOriginList splits the configured allow-list, dropping empty entries.
func (c *Config) AllowedOriginList() []string {
	var origins []string
	for _, o := range strings.Split(c.CORS.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.name", "oft")
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", "6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("oidc.issuer", "")
	viper.SetDefault("oidc.audience", "")
	viper.SetDefault("cors.allowed_origins", "http://localhost:5173")
	viper.SetDefault("transacts.page_size", 10)
	viper.SetDefault("transacts.max_page_size", 100)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// The config file is optional; environment variables cover everything.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Error reading config file, %s", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
