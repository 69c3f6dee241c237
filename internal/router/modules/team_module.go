package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anujyadav2244/cricriser/internal/container"
	handlers "github.com/anujyadav2244/cricriser/internal/interface/http"
	"github.com/anujyadav2244/cricriser/internal/interface/middleware"
	"github.com/anujyadav2244/cricriser/pkg/helpers"
)

type TeamModule struct {
	Handler *handlers.TeamHandler
	JWT     *helpers.JWTManager
}

func NewTeamModule(h *handlers.TeamHandler, jwt *helpers.JWTManager) *TeamModule {
	return &TeamModule{Handler: h, JWT: jwt}
}

func (m *TeamModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/teams", readLimiter, m.Handler.List)
	rg.GET("/teams/:id", readLimiter, m.Handler.Get)
	rg.GET("/teams/name/:name", readLimiter, m.Handler.GetByName)
	rg.GET("/leagues/:id/teams", readLimiter, m.Handler.ListByLeague)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, container.GetSessions()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByAdminID(), nil))
	{
		auth.POST("/leagues/:id/teams", m.Handler.Create)
		auth.PUT("/teams/:id", m.Handler.Update)
		auth.DELETE("/teams/:id", m.Handler.Delete)
		auth.DELETE("/teams", m.Handler.DeleteAll)
	}
}
