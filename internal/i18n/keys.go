// Package i18n provides internationalization support for the craft service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates invalid login credentials (user not registered or wrong password).
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyValidationDesiredPacks indicates invalid desired_packs validation.
	ErrKeyValidationDesiredPacks = "error.validation.desired_packs"
	// ErrKeyValidationSellPrice indicates a missing or invalid market sell price.
	ErrKeyValidationSellPrice = "error.validation.sell_price"
	// ErrKeyValidationRecipe indicates an invalid recipe payload.
	ErrKeyValidationRecipe = "error.validation.recipe"
	// ErrKeyRecipeNotFound indicates the requested recipe does not exist.
	ErrKeyRecipeNotFound = "error.recipe.not_found"
	// ErrKeyRecipeDuplicate indicates a recipe name collision.
	ErrKeyRecipeDuplicate = "error.recipe.duplicate"
	// ErrKeyLotOverCovered indicates lots declaring more units than required.
	ErrKeyLotOverCovered = "error.lot.over_covered"
	// ErrKeyLotMalformed indicates a half-filled price lot.
	ErrKeyLotMalformed = "error.lot.malformed"
	// ErrKeyLotInvalidValue indicates a lot with a negative price or
	// non-positive quantity.
	ErrKeyLotInvalidValue = "error.lot.invalid_value"
	// ErrKeyAssistantUnavailable indicates the assistant is disabled or failing.
	ErrKeyAssistantUnavailable = "error.assistant.unavailable"
	// ErrKeyUnknownCapability indicates an unknown assistant capability name.
	ErrKeyUnknownCapability = "error.assistant.unknown_capability"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyCraftCalculated indicates a successful cost/profit calculation.
	SuccessKeyCraftCalculated = "success.craft_calculated"
)
