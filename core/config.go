package core

import (
	"log"
	"net"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Host               string
		Addr               string
		DebugHost          string
		ShutdownTimeout    time.Duration
		JWTExpirationDelta time.Duration
	}

	DatabaseConfig struct {
		Engine        string
		Host          string
		Port          string
		Name          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		DisableTLS    bool
	}

	Config struct {
		Env              string // DEV (local; default), TEST, QA, PROD
		Build            string
		Debug            bool
		TestMode         bool
		AppName          string
		SecretKey        string
		Timezone         *time.Location
		FrontendBaseURL  string
		RollbarToken     string
		SendgridApiKey   string
		DefaultFromEmail mail.Address

		Server   ServerConfig
		Database DatabaseConfig
	}
)

func (dc DatabaseConfig) Address() string {
	return net.JoinHostPort(dc.Host, dc.Port)
}

// NewConfig loads the configuration from the environment (prefixed with $ENV) and the optional
// config/.env.<env> file.
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("build", "develop")
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "Classboard")
	v.SetDefault("secretKey", "super-secret-jwt-token-with-at-least-32-characters-long")
	v.SetDefault("timezone", "Local")
	v.SetDefault("frontendBaseURL", "http://localhost:3000")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("defaultFromName", "Classboard")

	v.SetDefault("serverHost", "localhost")
	v.SetDefault("serverAddr", ":8000")
	v.SetDefault("serverDebugHost", ":4000")
	v.SetDefault("serverShutdownTimeout", 5*time.Second)
	v.SetDefault("jwtExpirationDelta", 7*24*time.Hour)

	v.SetDefault("dbEngine", "postgres")
	v.SetDefault("dbHost", "localhost")
	v.SetDefault("dbPort", "5432")
	v.SetDefault("dbName", "classboard")
	v.SetDefault("dbUser", "classboard")
	v.SetDefault("dbPassword", "classboard")
	v.SetDefault("dbAdminUser", "postgres")
	v.SetDefault("dbAdminPassword", "postgres")
	v.SetDefault("dbDisableTLS", true)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	loc, err := time.LoadLocation(v.GetString("timezone"))
	if err != nil {
		log.Fatalf("config.LoadLocation(%s): %v", v.GetString("timezone"), err)
	}

	return &Config{
		Env:             env,
		Build:           v.GetString("build"),
		Debug:           v.GetBool("debug"),
		TestMode:        v.GetBool("testMode"),
		AppName:         v.GetString("appName"),
		SecretKey:       v.GetString("secretKey"),
		Timezone:        loc,
		FrontendBaseURL: v.GetString("frontendBaseURL"),
		RollbarToken:    v.GetString("rollbarToken"),
		SendgridApiKey:  v.GetString("sendgridApiKey"),
		DefaultFromEmail: mail.Address{
			Name:    v.GetString("defaultFromName"),
			Address: v.GetString("defaultFromEmail"),
		},
		Server: ServerConfig{
			Host:               v.GetString("serverHost"),
			Addr:               v.GetString("serverAddr"),
			DebugHost:          v.GetString("serverDebugHost"),
			ShutdownTimeout:    v.GetDuration("serverShutdownTimeout"),
			JWTExpirationDelta: v.GetDuration("jwtExpirationDelta"),
		},
		Database: DatabaseConfig{
			Engine:        v.GetString("dbEngine"),
			Host:          v.GetString("dbHost"),
			Port:          v.GetString("dbPort"),
			Name:          v.GetString("dbName"),
			User:          v.GetString("dbUser"),
			Password:      v.GetString("dbPassword"),
			AdminUser:     v.GetString("dbAdminUser"),
			AdminPassword: v.GetString("dbAdminPassword"),
			DisableTLS:    v.GetBool("dbDisableTLS"),
		},
	}
}
