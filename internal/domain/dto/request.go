// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"fmt"

	"github.com/raitocraft/craft-service/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// MaterialInput is one material line in a recipe create/update request.
type MaterialInput struct {
	// MaterialName identifies the material; must be unique within the recipe.
	MaterialName string `json:"material_name" binding:"required" example:"Ice Crystal"`
	// Quantity consumed per pack. Must be greater than 0.
	Quantity int `json:"quantity" binding:"required,gt=0" example:"3"`
	// MaterialType is one of drop, buy, profession.
	MaterialType string `json:"material_type" binding:"required" example:"drop"`
	// DefaultNpcPrice is the NPC reference price. Must be >= 0.
	DefaultNpcPrice int `json:"default_npc_price" example:"50"`
} // @name MaterialInput

// RecipeRequest represents the JSON request body for recipe create and
// update endpoints.
//
// @Description Recipe payload with output quantity, NPC price and materials
// @Example {"name": "Ice Sword", "quantity_produced": 1, "npc_sell_price": 1200, "materials": [{"material_name": "Ice Crystal", "quantity": 3, "material_type": "drop", "default_npc_price": 50}]}
type RecipeRequest struct {
	// Name of the produced item.
	Name string `json:"name" binding:"required" example:"Ice Sword"`
	// QuantityProduced is how many items one pack yields. Must be >= 1.
	QuantityProduced int `json:"quantity_produced" binding:"required,gte=1" example:"1"`
	// NpcSellPrice is the vendor sell price per pack. Must be >= 0.
	NpcSellPrice int `json:"npc_sell_price" example:"1200"`
	// Materials required per pack. At least one is required.
	Materials []MaterialInput `json:"materials" binding:"required,min=1"`
} // @name RecipeRequest

// Validate performs custom validation on the recipe request.
// Returns a *ValidationError naming the offending field, nil otherwise.
func (r *RecipeRequest) Validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if r.QuantityProduced < 1 {
		return &ValidationError{Field: "quantity_produced", Message: "must be at least 1"}
	}
	if r.NpcSellPrice < 0 {
		return &ValidationError{Field: "npc_sell_price", Message: "must not be negative"}
	}
	if len(r.Materials) == 0 {
		return &ValidationError{Field: "materials", Message: "at least one material is required"}
	}

	seen := make(map[string]bool, len(r.Materials))
	for i, m := range r.Materials {
		field := fmt.Sprintf("materials[%d]", i)
		if m.MaterialName == "" {
			return &ValidationError{Field: field + ".material_name", Message: "must not be empty"}
		}
		if seen[m.MaterialName] {
			return &ValidationError{Field: field + ".material_name", Message: "duplicate material " + m.MaterialName}
		}
		seen[m.MaterialName] = true
		if m.Quantity <= 0 {
			return &ValidationError{Field: field + ".quantity", Message: "must be a positive integer"}
		}
		if !model.MaterialType(m.MaterialType).Valid() {
			return &ValidationError{Field: field + ".material_type", Message: "must be one of drop, buy, profession"}
		}
		if m.DefaultNpcPrice < 0 {
			return &ValidationError{Field: field + ".default_npc_price", Message: "must not be negative"}
		}
	}
	return nil
}

// ToModel converts the request into a domain recipe.
func (r *RecipeRequest) ToModel() *model.Recipe {
	materials := make([]model.Material, len(r.Materials))
	for i, m := range r.Materials {
		materials[i] = model.Material{
			MaterialName:    m.MaterialName,
			Quantity:        m.Quantity,
			MaterialType:    model.MaterialType(m.MaterialType),
			DefaultNpcPrice: m.DefaultNpcPrice,
		}
	}
	return &model.Recipe{
		Name:             r.Name,
		QuantityProduced: r.QuantityProduced,
		NpcSellPrice:     r.NpcSellPrice,
		Materials:        materials,
	}
}

// CalculateRequest represents the JSON request body for the calculation
// endpoint. Lots are keyed by material name; profession costs are the
// optional per-unit overrides for profession materials.
//
// @Description What-if cost/profit calculation input
// @Example {"desired_packs": 5, "market_sell_price": 10, "lots": {"Ice Crystal": [{"unit_price": 3, "lot_quantity": 10}]}}
type CalculateRequest struct {
	// DesiredPacks is the number of packs to craft. Must be greater than 0.
	DesiredPacks int `json:"desired_packs" binding:"required,gt=0" example:"5" minimum:"1"`
	// MarketSellPrice is the market sell price per pack. Required; a
	// pointer so an omitted price is distinguishable from an explicit 0.
	MarketSellPrice *float64 `json:"market_sell_price" example:"10"`
	// Lots declares the purchase batches per drop/buy material.
	Lots map[string][]model.PriceLot `json:"lots"`
	// ProfessionCosts maps profession material names to per-unit costs.
	ProfessionCosts map[string]float64 `json:"profession_costs,omitempty"`
} // @name CalculateRequest

var (
	// ErrInvalidDesiredPacks is returned when desired_packs is invalid.
	ErrInvalidDesiredPacks = &ValidationError{
		Field:   "desired_packs",
		Message: "must be a positive integer",
	}
	// ErrMissingSellPrice is returned when market_sell_price is absent or negative.
	ErrMissingSellPrice = &ValidationError{
		Field:   "market_sell_price",
		Message: "must be present and not negative",
	}
)

// Validate performs custom validation on the calculation request.
// The missing-sell-price check is independent of material-level lot
// checks; it blocks submission on its own.
func (r *CalculateRequest) Validate() error {
	if r.DesiredPacks <= 0 {
		return ErrInvalidDesiredPacks
	}
	if r.MarketSellPrice == nil || *r.MarketSellPrice < 0 {
		return ErrMissingSellPrice
	}
	for name, cost := range r.ProfessionCosts {
		if cost < 0 {
			return &ValidationError{
				Field:   "profession_costs." + name,
				Message: "must not be negative",
			}
		}
	}
	return nil
}

// InlineCalculateRequest carries a full recipe alongside the calculation
// input, for what-if runs against recipes not stored in the registry.
type InlineCalculateRequest struct {
	Recipe      RecipeRequest    `json:"recipe" binding:"required"`
	Calculation CalculateRequest `json:"calculation" binding:"required"`
} // @name InlineCalculateRequest

// Validate validates both the embedded recipe and the calculation input.
func (r *InlineCalculateRequest) Validate() error {
	if err := r.Recipe.Validate(); err != nil {
		return err
	}
	return r.Calculation.Validate()
}

// ChatRequest represents the JSON request body for the assistant chat
// endpoint.
//
// @Description Assistant chat message
// @Example {"session_id": "b4c0...", "message": "Quais são os materiais para Ice Sword?"}
type ChatRequest struct {
	// SessionID continues an existing conversation when set; a new
	// session is created (and returned) when empty.
	SessionID string `json:"session_id,omitempty"`
	// Message is the user's chat message.
	Message string `json:"message" binding:"required"`
} // @name ChatRequest

// Validate performs custom validation on the chat request.
func (r *ChatRequest) Validate() error {
	if r.Message == "" {
		return &ValidationError{Field: "message", Message: "must not be empty"}
	}
	return nil
}
