package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anujyadav2244/cricriser/internal/container"
	handlers "github.com/anujyadav2244/cricriser/internal/interface/http"
	"github.com/anujyadav2244/cricriser/internal/interface/middleware"
	"github.com/anujyadav2244/cricriser/pkg/helpers"
)

type PlayerModule struct {
	Handler *handlers.PlayerHandler
	JWT     *helpers.JWTManager
}

func NewPlayerModule(h *handlers.PlayerHandler, jwt *helpers.JWTManager) *PlayerModule {
	return &PlayerModule{Handler: h, JWT: jwt}
}

func (m *PlayerModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/players", readLimiter, m.Handler.List)
	rg.GET("/players/:id", readLimiter, m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, container.GetSessions()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByAdminID(), nil))
	{
		auth.POST("/players", m.Handler.Create)
	}
}
