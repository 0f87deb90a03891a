package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shelfmate/shelfmate-server/mongo"
)

func NewMongoDatabase(env *Env) mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbHost := env.DBHost
	dbPort := env.DBPort
	dbUser := env.DBUser
	dbPass := env.DBPass

	mongodbURI := fmt.Sprintf("mongodb://%s:%s@%s:%s", dbUser, dbPass, dbHost, dbPort)
	if dbUser == "" || dbPass == "" {
		mongodbURI = fmt.Sprintf("mongodb://%s:%s", dbHost, dbPort)
	}

	client, err := mongo.NewClient(mongodbURI)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo client creation failed")
	}

	err = client.Connect(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}

	err = client.Ping(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo ping failed")
	}

	return client
}

func CloseMongoDBConnection(client mongo.Client) {
	if client == nil {
		return
	}

	err := client.Disconnect(context.TODO())
	if err != nil {
		log.Fatal().Err(err).Msg("mongo disconnect failed")
	}

	log.Info().Msg("connection to mongodb closed")
}
