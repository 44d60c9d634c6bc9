package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/raitocraft/craft-service/internal/domain/dto"
	"github.com/raitocraft/craft-service/internal/i18n"
	"github.com/raitocraft/craft-service/internal/middleware"
	"github.com/raitocraft/craft-service/internal/service"
)

// RecipesHandler provides HTTP handlers for the recipe registry routes.
type RecipesHandler struct {
	recipeService service.RecipeService
	calculation   service.CalculationService
}

// NewRecipesHandler creates a new RecipesHandler instance.
func NewRecipesHandler(recipeService service.RecipeService, calculation service.CalculationService) *RecipesHandler {
	return &RecipesHandler{
		recipeService: recipeService,
		calculation:   calculation,
	}
}

// ListRecipes handles GET /api/items requests.
//
// @Summary      List recipes
// @Description  Returns all registered recipes sorted by name. The optional search parameter filters by recipe name or material name, case-insensitively.
// @Tags         Recipes
// @Accept       json
// @Produce      json
// @Param        search query string false "Filter by recipe or material name"
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Recipe list"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/items [get]
func (h *RecipesHandler) ListRecipes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	recipes, err := h.recipeService.List(c.Request.Context(), c.Query("search"), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(recipes)
}

// GetRecipe handles GET /api/items/:id/recipe requests.
//
// @Summary      Get one recipe
// @Description  Returns the full recipe for an item, including its materials.
// @Tags         Recipes
// @Accept       json
// @Produce      json
// @Param        id path string true "Recipe ID"
// @Success      200 {object} dto.SuccessResponse "Recipe"
// @Failure      400 {object} dto.ErrorResponse "Invalid recipe id"
// @Failure      404 {object} dto.ErrorResponse "Recipe not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/items/{id}/recipe [get]
func (h *RecipesHandler) GetRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	recipe, err := h.recipeService.GetByID(c.Request.Context(), id)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if recipe == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyRecipeNotFound, nil)
		return
	}

	builder.SuccessOK(recipe)
}

// CreateRecipe handles POST /api/items requests.
//
// @Summary      Register a recipe
// @Description  Creates a new recipe. The name must be unique and every material needs a positive quantity and a valid type (drop, buy or profession).
// @Tags         Recipes
// @Accept       json
// @Produce      json
// @Param        request body dto.RecipeRequest true "Recipe definition"
// @Success      201 {object} dto.SuccessResponse "Created recipe"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid payload"
// @Failure      409 {object} dto.ErrorResponse "Conflict - duplicate recipe name"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/items [post]
func (h *RecipesHandler) CreateRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.RecipeRequest](c)
	if err != nil {
		var vErr *dto.ValidationError
		if errors.As(err, &vErr) {
			builder.ErrorWithMessage(http.StatusBadRequest, vErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	created, err := h.recipeService.Create(c.Request.Context(), *req.ToModel())
	if err != nil {
		if errors.Is(err, service.ErrDuplicateRecipeName) {
			builder.Error(http.StatusConflict, i18n.ErrKeyRecipeDuplicate, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	h.auditRecipeChange(c, "create_recipe", "Recipe created", created.ID.Hex(), created.Name)
	builder.SuccessCreated(created)
}

// UpdateRecipe handles PUT /api/items/:id requests.
//
// @Summary      Update a recipe
// @Description  Replaces the name, output quantity, NPC sell price and materials of an existing recipe. Cached calculations for the old version are invalidated.
// @Tags         Recipes
// @Accept       json
// @Produce      json
// @Param        id path string true "Recipe ID"
// @Param        request body dto.RecipeRequest true "New recipe definition"
// @Success      200 {object} dto.SuccessResponse "Updated recipe"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid payload"
// @Failure      404 {object} dto.ErrorResponse "Recipe not found"
// @Failure      409 {object} dto.ErrorResponse "Conflict - duplicate recipe name"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/items/{id} [put]
func (h *RecipesHandler) UpdateRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	req, err := BuildRequestAndValidate[dto.RecipeRequest](c)
	if err != nil {
		var vErr *dto.ValidationError
		if errors.As(err, &vErr) {
			builder.ErrorWithMessage(http.StatusBadRequest, vErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	updated, err := h.recipeService.Update(c.Request.Context(), id, *req.ToModel())
	if err != nil {
		if errors.Is(err, service.ErrDuplicateRecipeName) {
			builder.Error(http.StatusConflict, i18n.ErrKeyRecipeDuplicate, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if updated == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyRecipeNotFound, nil)
		return
	}

	if h.calculation != nil {
		h.calculation.InvalidateCache()
	}

	h.auditRecipeChange(c, "update_recipe", "Recipe updated", updated.ID.Hex(), updated.Name)
	builder.SuccessOK(updated)
}

// DeleteRecipe handles DELETE /api/items/:id requests.
//
// @Summary      Delete a recipe
// @Description  Removes a recipe from the registry.
// @Tags         Recipes
// @Accept       json
// @Produce      json
// @Param        id path string true "Recipe ID"
// @Success      200 {object} dto.SuccessResponse "Deletion confirmation"
// @Failure      400 {object} dto.ErrorResponse "Invalid recipe id"
// @Failure      404 {object} dto.ErrorResponse "Recipe not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/items/{id} [delete]
func (h *RecipesHandler) DeleteRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	deleted, err := h.recipeService.Delete(c.Request.Context(), id)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if !deleted {
		builder.Error(http.StatusNotFound, i18n.ErrKeyRecipeNotFound, nil)
		return
	}

	if h.calculation != nil {
		h.calculation.InvalidateCache()
	}

	h.auditRecipeChange(c, "delete_recipe", "Recipe deleted", id.Hex(), "")
	builder.SuccessOK(map[string]interface{}{"deleted": true})
}

// auditRecipeChange records a registry mutation through the async audit log.
func (h *RecipesHandler) auditRecipeChange(c *gin.Context, action, message, id, name string) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, action, message, map[string]interface{}{
				"recipe_id":   id,
				"recipe_name": name,
			})
		}
	}
}
