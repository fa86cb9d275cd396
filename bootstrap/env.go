package bootstrap

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

type Env struct {
	AppEnv            string `mapstructure:"APP_ENV"`
	ServerAddress     string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout    int    `mapstructure:"CONTEXT_TIMEOUT"`
	MongoURI          string `mapstructure:"MONGO_URI"`
	DBName            string `mapstructure:"DB_NAME"`
	AccessTokenSecret string `mapstructure:"ACCESS_TOKEN_SECRET"`
}

func NewEnv(logger *log.Logger) *Env {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("CONTEXT_TIMEOUT", 10)
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("DB_NAME", "soundhaven")

	viper.SetConfigFile(".env")
	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("no .env file found, using environment variables only")
	}
	viper.AutomaticEnv()

	var env Env
	if err := viper.Unmarshal(&env); err != nil {
		logger.Fatal("environment can't be loaded", "err", err)
	}

	if env.AccessTokenSecret == "" {
		logger.Fatal("ACCESS_TOKEN_SECRET is required")
	}
	if env.AppEnv == "development" {
		logger.Info("running in development mode")
	}
	return &env
}
