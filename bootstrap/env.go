package bootstrap

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Env struct {
	AppEnv            string `mapstructure:"APP_ENV"`
	ServerAddress     string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout    int    `mapstructure:"CONTEXT_TIMEOUT"`
	DBHost            string `mapstructure:"DB_HOST"`
	DBPort            string `mapstructure:"DB_PORT"`
	DBUser            string `mapstructure:"DB_USER"`
	DBPass            string `mapstructure:"DB_PASS"`
	DBName            string `mapstructure:"DB_NAME"`
	AccessTokenSecret string `mapstructure:"ACCESS_TOKEN_SECRET"`
}

func NewEnv() *Env {
	env := Env{}
	viper.SetConfigFile(".env")

	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("can't find the file .env")
	}

	err = viper.Unmarshal(&env)
	if err != nil {
		log.Fatal().Err(err).Msg("environment can't be loaded")
	}

	if env.AppEnv == "development" {
		log.Info().Msg("the app is running in development env")
	}

	return &env
}
