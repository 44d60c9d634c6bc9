package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/raitocraft/craft-service/internal/domain/dto"
	"github.com/raitocraft/craft-service/internal/domain/model"
	"github.com/raitocraft/craft-service/internal/i18n"
	"github.com/raitocraft/craft-service/internal/metrics"
	"github.com/raitocraft/craft-service/internal/middleware"
	"github.com/raitocraft/craft-service/internal/service"
)

// Handler provides HTTP handlers for the calculation routes.
type Handler struct {
	calculation   service.CalculationService
	recipeService service.RecipeService
}

// NewHandler creates a new Handler instance.
func NewHandler(calculation service.CalculationService, recipeService service.RecipeService) *Handler {
	return &Handler{
		calculation:   calculation,
		recipeService: recipeService,
	}
}

// Calculate handles POST /api/items/:id/calculate requests.
//
// @Summary      Calculate cost and profit for a stored recipe
// @Description  Runs the cost/profit projection for a registered recipe against user-entered market prices. Declared price lots are validated per material: under-coverage yields a warning, over-coverage blocks the calculation.
// @Tags         Calculations
// @Accept       json
// @Produce      json
// @Param        id path string true "Recipe ID"
// @Param        request body dto.CalculateRequest true "Market prices and desired pack count"
// @Success      200 {object} dto.SuccessResponse "Successful calculation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Recipe not found"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable - blocking lot problem"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/items/{id}/calculate [post]
func (h *Handler) Calculate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	var req dto.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		metrics.RecordCraftCalculation(0, "validation_error")
		switch {
		case errors.Is(err, dto.ErrInvalidDesiredPacks):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationDesiredPacks, err)
		case errors.Is(err, dto.ErrMissingSellPrice):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationSellPrice, err)
		default:
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
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

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "calculate", "Craft calculation requested", map[string]interface{}{
				"recipe_id":     id.Hex(),
				"recipe_name":   recipe.Name,
				"desired_packs": req.DesiredPacks,
			})
		}
	}

	h.runCalculation(c, builder, recipe, req)
}

// CalculateInline handles POST /api/calculate requests: a stateless
// calculation over a recipe supplied in the request body, without
// touching the registry.
//
// @Summary      Calculate cost and profit for an inline recipe
// @Description  Runs the cost/profit projection for a recipe provided in the request body, useful for what-if runs on recipes that are not stored.
// @Tags         Calculations
// @Accept       json
// @Produce      json
// @Param        request body dto.InlineCalculateRequest true "Recipe plus market prices and desired pack count"
// @Success      200 {object} dto.SuccessResponse "Successful calculation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable - blocking lot problem"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/calculate [post]
func (h *Handler) CalculateInline(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.InlineCalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Recipe.Validate(); err != nil {
		metrics.RecordCraftCalculation(0, "validation_error")
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}
	if err := req.Calculation.Validate(); err != nil {
		metrics.RecordCraftCalculation(0, "validation_error")
		switch {
		case errors.Is(err, dto.ErrInvalidDesiredPacks):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationDesiredPacks, err)
		case errors.Is(err, dto.ErrMissingSellPrice):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationSellPrice, err)
		default:
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	recipe := req.Recipe.ToModel()
	h.runCalculation(c, builder, recipe, req.Calculation)
}

// runCalculation executes the calculation flow and maps blocking lot
// problems to 422 responses carrying the specific message.
func (h *Handler) runCalculation(c *gin.Context, builder *ResponseBuilder, recipe *model.Recipe, req dto.CalculateRequest) {
	start := time.Now()

	result, err := h.calculation.Calculate(recipe, req)
	if err != nil {
		metrics.RecordCraftCalculation(time.Since(start), "lot_error")

		var overCoverage *service.OverCoverageError
		var malformed *service.MalformedLotError
		var badValue *service.LotValueError
		switch {
		case errors.As(err, &overCoverage):
			builder.ErrorWithMessage(http.StatusUnprocessableEntity, lotErrorMessage(c, i18n.ErrKeyLotOverCovered, err), err)
		case errors.As(err, &malformed):
			builder.ErrorWithMessage(http.StatusUnprocessableEntity, lotErrorMessage(c, i18n.ErrKeyLotMalformed, err), err)
		case errors.As(err, &badValue):
			builder.ErrorWithMessage(http.StatusUnprocessableEntity, lotErrorMessage(c, i18n.ErrKeyLotInvalidValue, err), err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	metrics.RecordCraftCalculation(time.Since(start), "success")
	builder.SuccessOK(result)
}

// lotErrorMessage prefixes the material-identifying detail with the
// localized headline for the lot problem.
func lotErrorMessage(c *gin.Context, messageKey string, err error) string {
	locale := i18n.GetLocale(c)
	return i18n.GetTranslator().Translate(messageKey, locale) + ": " + err.Error()
}
