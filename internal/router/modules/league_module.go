package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anujyadav2244/cricriser/internal/container"
	handlers "github.com/anujyadav2244/cricriser/internal/interface/http"
	"github.com/anujyadav2244/cricriser/internal/interface/middleware"
	"github.com/anujyadav2244/cricriser/pkg/helpers"
)

type LeagueModule struct {
	Handler *handlers.LeagueHandler
	JWT     *helpers.JWTManager
}

func NewLeagueModule(h *handlers.LeagueHandler, jwt *helpers.JWTManager) *LeagueModule {
	return &LeagueModule{Handler: h, JWT: jwt}
}

func (m *LeagueModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/leagues", readLimiter, m.Handler.List)
	rg.GET("/leagues/search", readLimiter, m.Handler.Search)
	rg.GET("/leagues/:id", readLimiter, m.Handler.Get)
	rg.GET("/leagues/name/:name", readLimiter, m.Handler.GetByName)
	rg.GET("/leagues/:id/matches", readLimiter, m.Handler.Fixtures)
	rg.GET("/points/:id", readLimiter, m.Handler.PointsTable)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, container.GetSessions()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByAdminID(), nil))
	{
		auth.GET("/leagues/mine", m.Handler.ListMine)
		auth.POST("/leagues", m.Handler.Create)
		auth.PUT("/leagues/:id", m.Handler.Update)
		auth.DELETE("/leagues/:id", m.Handler.Delete)
		auth.DELETE("/leagues", m.Handler.DeleteAll)
	}
}
