package handler

import (
	"net/http"

	"github.com/curtisnlogan/lodestar-project/internal/app/enrich"
	"github.com/curtisnlogan/lodestar-project/internal/app/middleware"
	"github.com/curtisnlogan/lodestar-project/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
)

type Handler struct {
	Repository  *repository.Repository
	Enricher    *enrich.Enricher
	MinioClient *minio.Client
	Bucket      string
}

func NewHandler(repo *repository.Repository, enricher *enrich.Enricher, minioClient *minio.Client, bucket string) *Handler {
	return &Handler{
		Repository:  repo,
		Enricher:    enricher,
		MinioClient: minioClient,
		Bucket:      bucket,
	}
}

func (h *Handler) RegisterHandler(rou *gin.Engine) {
	rou.Use(middleware.CORSMiddleware())

	api := rou.Group("/api")

	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	users := api.Group("/users")
	{
		users.POST("/register", h.RegisterUser)
		users.POST("/login", h.LoginUser)
		users.POST("/logout", h.LogoutUser)
		users.GET("/me", middleware.AuthMiddleware(), h.GetCurrentUser)
		users.DELETE("/:id", middleware.AuthMiddleware(), middleware.RequireModerator(), h.DeleteUser)
	}

	authed := api.Group("", middleware.AuthMiddleware())
	{
		sessions := authed.Group("/sessions")
		{
			sessions.POST("", h.CreateSession)
			sessions.GET("", h.GetSessions)
			sessions.GET("/:slug", h.GetSessionBySlug)
			sessions.PUT("/:id", h.UpdateSession)
			sessions.DELETE("/:id", h.DeleteSession)

			// создание наблюдений внутри сеанса
			sessions.POST("/:id/observations/solar", h.CreateSolarSystemObservation)
			sessions.POST("/:id/observations/star", h.CreateStarObservation)
			sessions.POST("/:id/observations/deepsky", h.CreateDeepSkyObservation)
			sessions.POST("/:id/observations/event", h.CreateSpecialEventObservation)
		}

		observations := authed.Group("/observations")
		{
			observations.GET("/:kind/:id", h.GetObservation)
			observations.DELETE("/:kind/:id", h.DeleteObservation)
			observations.POST("/:kind/:id/drawing", h.UploadDrawing)
		}
	}
}
