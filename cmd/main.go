package main

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soundhaven/soundhaven/api/route"
	"github.com/soundhaven/soundhaven/bootstrap"
)

func main() {
	app := bootstrap.App()
	defer app.Close()

	timeout := time.Duration(app.Env.ContextTimeout) * time.Second

	if app.Env.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	route.Setup(app.Env, timeout, app.DB, engine)

	app.Logger.Info("listening", "addr", app.Env.ServerAddress)
	if err := engine.Run(app.Env.ServerAddress); err != nil {
		app.Logger.Fatal("server stopped", "err", err)
	}
}
