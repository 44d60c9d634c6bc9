package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raitocraft/craft-service/internal/domain/model"
)

func validRecipeRequest() RecipeRequest {
	return RecipeRequest{
		Name:             "Ice Sword",
		QuantityProduced: 1,
		NpcSellPrice:     1200,
		Materials: []MaterialInput{
			{MaterialName: "Ice Crystal", Quantity: 3, MaterialType: "drop", DefaultNpcPrice: 50},
			{MaterialName: "Iron Plate", Quantity: 1, MaterialType: "buy", DefaultNpcPrice: 30},
		},
	}
}

func TestRecipeRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*RecipeRequest)
		wantField string
	}{
		{
			name:   "valid request",
			mutate: func(r *RecipeRequest) {},
		},
		{
			name:      "empty name",
			mutate:    func(r *RecipeRequest) { r.Name = "" },
			wantField: "name",
		},
		{
			name:      "zero quantity produced",
			mutate:    func(r *RecipeRequest) { r.QuantityProduced = 0 },
			wantField: "quantity_produced",
		},
		{
			name:      "negative npc sell price",
			mutate:    func(r *RecipeRequest) { r.NpcSellPrice = -1 },
			wantField: "npc_sell_price",
		},
		{
			name:      "no materials",
			mutate:    func(r *RecipeRequest) { r.Materials = nil },
			wantField: "materials",
		},
		{
			name:      "empty material name",
			mutate:    func(r *RecipeRequest) { r.Materials[1].MaterialName = "" },
			wantField: "materials[1].material_name",
		},
		{
			name:      "duplicate material name",
			mutate:    func(r *RecipeRequest) { r.Materials[1].MaterialName = "Ice Crystal" },
			wantField: "materials[1].material_name",
		},
		{
			name:      "zero material quantity",
			mutate:    func(r *RecipeRequest) { r.Materials[0].Quantity = 0 },
			wantField: "materials[0].quantity",
		},
		{
			name:      "unknown material type",
			mutate:    func(r *RecipeRequest) { r.Materials[0].MaterialType = "loot" },
			wantField: "materials[0].material_type",
		},
		{
			name:      "negative default npc price",
			mutate:    func(r *RecipeRequest) { r.Materials[0].DefaultNpcPrice = -5 },
			wantField: "materials[0].default_npc_price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRecipeRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			assert.True(t, ok)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestRecipeRequest_ToModel(t *testing.T) {
	req := validRecipeRequest()

	recipe := req.ToModel()

	assert.Equal(t, "Ice Sword", recipe.Name)
	assert.Equal(t, 1, recipe.QuantityProduced)
	assert.Equal(t, 1200, recipe.NpcSellPrice)
	assert.Len(t, recipe.Materials, 2)
	assert.Equal(t, model.MaterialTypeDrop, recipe.Materials[0].MaterialType)
	assert.Equal(t, model.MaterialTypeBuy, recipe.Materials[1].MaterialType)
	assert.Equal(t, 3, recipe.Materials[0].Quantity)
}

func TestCalculateRequest_Validate(t *testing.T) {
	price := 10.0
	negativePrice := -1.0

	tests := []struct {
		name    string
		request CalculateRequest
		wantErr error
	}{
		{
			name:    "valid request",
			request: CalculateRequest{DesiredPacks: 5, MarketSellPrice: &price},
		},
		{
			name:    "zero desired packs",
			request: CalculateRequest{DesiredPacks: 0, MarketSellPrice: &price},
			wantErr: ErrInvalidDesiredPacks,
		},
		{
			name:    "negative desired packs",
			request: CalculateRequest{DesiredPacks: -3, MarketSellPrice: &price},
			wantErr: ErrInvalidDesiredPacks,
		},
		{
			name:    "missing sell price",
			request: CalculateRequest{DesiredPacks: 5},
			wantErr: ErrMissingSellPrice,
		},
		{
			name:    "negative sell price",
			request: CalculateRequest{DesiredPacks: 5, MarketSellPrice: &negativePrice},
			wantErr: ErrMissingSellPrice,
		},
		{
			name: "zero sell price is allowed",
			request: CalculateRequest{
				DesiredPacks:    5,
				MarketSellPrice: floatPtr(0),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCalculateRequest_Validate_ProfessionCosts(t *testing.T) {
	price := 10.0

	req := CalculateRequest{
		DesiredPacks:    1,
		MarketSellPrice: &price,
		ProfessionCosts: map[string]float64{"Enchanted Thread": -2},
	}

	err := req.Validate()

	assert.Error(t, err)
	validationErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Equal(t, "profession_costs.Enchanted Thread", validationErr.Field)

	req.ProfessionCosts["Enchanted Thread"] = 2
	assert.NoError(t, req.Validate())
}

func TestInlineCalculateRequest_Validate(t *testing.T) {
	price := 50.0

	valid := InlineCalculateRequest{
		Recipe:      validRecipeRequest(),
		Calculation: CalculateRequest{DesiredPacks: 5, MarketSellPrice: &price},
	}
	assert.NoError(t, valid.Validate())

	badRecipe := valid
	badRecipe.Recipe.Name = ""
	err := badRecipe.Validate()
	assert.Error(t, err)
	assert.Equal(t, "name", err.(*ValidationError).Field)

	badCalc := valid
	badCalc.Calculation.DesiredPacks = 0
	assert.ErrorIs(t, badCalc.Validate(), ErrInvalidDesiredPacks)
}

func TestChatRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ChatRequest{Message: "hello"}).Validate())
	assert.NoError(t, (&ChatRequest{SessionID: "abc", Message: "hello"}).Validate())

	err := (&ChatRequest{}).Validate()
	assert.Error(t, err)
	assert.Equal(t, "message", err.(*ValidationError).Field)
}

func floatPtr(v float64) *float64 {
	return &v
}
