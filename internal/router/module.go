package router

import "github.com/gin-gonic/gin"

// Module is one feature area of the admin API (accounts, leagues, teams,
// players). A module owns its routes and their rate-limit tiers and mounts
// them on the shared API group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
