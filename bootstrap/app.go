package bootstrap

import (
	"github.com/charmbracelet/log"

	"github.com/soundhaven/soundhaven/mongo"
)

type Application struct {
	Env    *Env
	Client mongo.Client
	DB     mongo.Database
	Logger *log.Logger
}

func App() Application {
	logger := NewLogger()
	env := NewEnv(logger)
	client := NewMongoClient(env, logger)
	db := client.Database(env.DBName)

	mongo.CreateIndexes(db, logger)

	return Application{
		Env:    env,
		Client: client,
		DB:     db,
		Logger: logger,
	}
}

func (app *Application) Close() {
	CloseMongoClient(app.Client, app.Logger)
}
