package router

import "github.com/gin-gonic/gin"

// Registry collects feature modules and mounts them all under /api once
// InitModules has wired them from the container singletons.
type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api")}
}

// Use adds middleware applied to the whole /api group ahead of any module
// routes.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

// RegisterAll mounts group middleware and then every module, in the order
// they were added.
func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
