package bootstrap

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/soundhaven/soundhaven/mongo"
)

func NewMongoClient(env *Env, logger *log.Logger) mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.NewClient(env.MongoURI)
	if err != nil {
		logger.Fatal("mongo client", "err", err)
	}
	if err := client.Connect(ctx); err != nil {
		logger.Fatal("mongo connect", "err", err)
	}
	if err := client.Ping(ctx); err != nil {
		logger.Fatal("mongo ping", "err", err)
	}
	logger.Info("connected to mongo", "db", env.DBName)
	return client
}

func CloseMongoClient(client mongo.Client, logger *log.Logger) {
	if client == nil {
		return
	}
	if err := client.Disconnect(context.Background()); err != nil {
		logger.Error("mongo disconnect", "err", err)
		return
	}
	logger.Info("connection to mongo closed")
}
