package router

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/qrmenu/internal/deps"
)

// MountFunc represents a function that mounts routes for a module
type MountFunc func(*gin.RouterGroup, *deps.Container)

type Mounter struct {
	container *deps.Container
	prefix    string
}

func NewMounter(container *deps.Container) *Mounter {
	return &Mounter{container: container, prefix: "/api/v1"}
}

// Public routes need no credentials.
func (m *Mounter) Public(engine *gin.Engine) *RouteGroup {
	return &RouteGroup{group: engine.Group(m.prefix), container: m.container}
}

// Admin routes live under /admin and run authMiddleware before any handler.
func (m *Mounter) Admin(engine *gin.Engine, authMiddleware gin.HandlerFunc) *RouteGroup {
	group := engine.Group(m.prefix + "/admin")
	group.Use(authMiddleware)
	return &RouteGroup{group: group, container: m.container}
}

type RouteGroup struct {
	group     *gin.RouterGroup
	container *deps.Container
}

// Mount provides a fluent interface for mounting modules
func (rg *RouteGroup) Mount(mountFunc MountFunc) *RouteGroup {
	mountFunc(rg.group, rg.container)
	return rg
}

// Group creates a sub-group for organizing routes
func (rg *RouteGroup) Group(path string) *RouteGroup {
	return &RouteGroup{group: rg.group.Group(path), container: rg.container}
}
