package app

import (
	"fmt"

	"github.com/curtisnlogan/lodestar-project/internal/app/config"
	"github.com/curtisnlogan/lodestar-project/internal/app/handler"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.Handler
}

func NewApp(cfg *config.Config, r *gin.Engine, h *handler.Handler) *Application {
	return &Application{
		Config:  cfg,
		Router:  r,
		Handler: h,
	}
}

func (a *Application) RunApp() {
	log.Info("Server start up")

	a.Handler.RegisterHandler(a.Router)

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	if err := a.Router.Run(serverAddress); err != nil {
		log.Fatal(err)
	}
	log.Info("Server down")
}
