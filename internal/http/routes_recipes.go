package http

import (
	"github.com/gin-gonic/gin"

	"github.com/raitocraft/craft-service/internal/service"
)

// RecipeRoutes handles recipe and calculation route registration.
type RecipeRoutes struct {
	handler        *Handler
	recipesHandler *RecipesHandler
}

// NewRecipeRoutes creates a new RecipeRoutes instance.
func NewRecipeRoutes(calculation service.CalculationService, recipeService service.RecipeService) *RecipeRoutes {
	return &RecipeRoutes{
		handler:        NewHandler(calculation, recipeService),
		recipesHandler: NewRecipesHandler(recipeService, calculation),
	}
}

// register wires the recipe registry and calculation endpoints into the
// given group. The same set is used for both public and protected modes;
// only the surrounding middleware differs.
func (r *RecipeRoutes) register(rg *gin.RouterGroup) {
	rg.GET("/items", r.recipesHandler.ListRecipes)
	rg.POST("/items", r.recipesHandler.CreateRecipe)
	rg.GET("/items/:id/recipe", r.recipesHandler.GetRecipe)
	rg.PUT("/items/:id", r.recipesHandler.UpdateRecipe)
	rg.DELETE("/items/:id", r.recipesHandler.DeleteRecipe)

	rg.POST("/items/:id/calculate", r.handler.Calculate)
	rg.POST("/calculate", r.handler.CalculateInline)
}

// RegisterPublicRoutes registers recipe routes (when auth is disabled).
func (r *RecipeRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	r.register(rg)
}

// RegisterProtectedRoutes registers recipe routes (when auth is enabled).
func (r *RecipeRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	r.register(protected)
}

// GetHandler returns the underlying calculation handler.
func (r *RecipeRoutes) GetHandler() *Handler {
	return r.handler
}
