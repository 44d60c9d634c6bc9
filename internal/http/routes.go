package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup defines routes that don't require authentication.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers public routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup defines routes that require authentication.
type ProtectedRouteGroup interface {
	// RegisterProtectedRoutes registers protected routes to the given router group.
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// Every route group supports both registration modes; which one the
// router uses depends on whether auth is enabled.
var (
	_ PublicRouteGroup    = (*RecipeRoutes)(nil)
	_ ProtectedRouteGroup = (*RecipeRoutes)(nil)
	_ PublicRouteGroup    = (*AssistantRoutes)(nil)
	_ ProtectedRouteGroup = (*AssistantRoutes)(nil)
	_ PublicRouteGroup    = (*AuthRoutes)(nil)
	_ ProtectedRouteGroup = (*AuthRoutes)(nil)
)
