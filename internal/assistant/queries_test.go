package assistant

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/raitocraft/craft-service/internal/domain/model"
	"github.com/raitocraft/craft-service/internal/mocks"
	"github.com/raitocraft/craft-service/internal/service"
)

func testRegistryRecipes() []model.Recipe {
	return []model.Recipe{
		{
			Name:             "Ice Sword",
			QuantityProduced: 1,
			NpcSellPrice:     100,
			Materials: []model.Material{
				{MaterialName: "Ice Crystal", Quantity: 2, MaterialType: model.MaterialTypeDrop, DefaultNpcPrice: 10},
				{MaterialName: "Iron Plate", Quantity: 1, MaterialType: model.MaterialTypeBuy, DefaultNpcPrice: 30},
			},
		},
		{
			Name:             "Enchanted Cloak",
			QuantityProduced: 1,
			NpcSellPrice:     80,
			Materials: []model.Material{
				{MaterialName: "Enchanted Thread", Quantity: 4, MaterialType: model.MaterialTypeProfession, DefaultNpcPrice: 5},
			},
		},
		{
			Name:             "Frost Potion",
			QuantityProduced: 5,
			NpcSellPrice:     10,
			Materials: []model.Material{
				{MaterialName: "Ice Crystal", Quantity: 3, MaterialType: model.MaterialTypeDrop, DefaultNpcPrice: 10},
			},
		},
	}
}

func capabilityRegistry(t *testing.T, repo *mocks.MockRecipesRepositoryInterface) *Registry {
	t.Helper()
	registry := NewRegistry()
	RegisterRecipeCapabilities(registry, service.NewRecipeService(repo))
	return registry
}

func TestRegisterRecipeCapabilities_DeclaresAllQueries(t *testing.T) {
	registry := capabilityRegistry(t, new(mocks.MockRecipesRepositoryInterface))

	declarations := registry.Declarations()

	names := make([]string, 0, len(declarations))
	for _, d := range declarations {
		names = append(names, d.Name)
	}
	assert.ElementsMatch(t, []string{
		"getRecipeByName",
		"findCraftsByMaterial",
		"getMostProfitableItemsByNpcPrice",
		"filterItemsByMaterialProfile",
		"getMaterialUsageSummary",
		"checkCraftingPossibilities",
	}, names)
}

func TestCapability_GetRecipeByName(t *testing.T) {
	repo := new(mocks.MockRecipesRepositoryInterface)
	registry := capabilityRegistry(t, repo)

	expected := &model.Recipe{Name: "Ice Sword"}
	repo.On("GetByName", mock.Anything, "Ice Sword").Return(expected, nil)

	result, err := registry.Dispatch(context.Background(), "getRecipeByName", json.RawMessage(`{"itemName": "Ice Sword"}`))

	require.NoError(t, err)
	assert.Equal(t, expected, result)

	_, err = registry.Dispatch(context.Background(), "getRecipeByName", json.RawMessage(`{}`))
	assert.Error(t, err)
}

func TestCapability_FindCraftsByMaterial(t *testing.T) {
	repo := new(mocks.MockRecipesRepositoryInterface)
	registry := capabilityRegistry(t, repo)

	expected := []model.Recipe{{Name: "Ice Sword"}, {Name: "Frost Potion"}}
	repo.On("FindByMaterial", mock.Anything, "Ice Crystal").Return(expected, nil)

	result, err := registry.Dispatch(context.Background(), "findCraftsByMaterial", json.RawMessage(`{"materialName": "Ice Crystal"}`))

	require.NoError(t, err)
	assert.Equal(t, expected, result)

	_, err = registry.Dispatch(context.Background(), "findCraftsByMaterial", json.RawMessage(`{}`))
	assert.Error(t, err)
}

func TestCapability_GetMostProfitableItemsByNpcPrice(t *testing.T) {
	repo := new(mocks.MockRecipesRepositoryInterface)
	registry := capabilityRegistry(t, repo)

	repo.On("List", mock.Anything, "", 0).Return(testRegistryRecipes(), nil)

	result, err := registry.Dispatch(context.Background(), "getMostProfitableItemsByNpcPrice", nil)

	require.NoError(t, err)
	entries, ok := result.([]NpcProfitEntry)
	require.True(t, ok)
	require.Len(t, entries, 3)

	// Cloak: 80 - 4*5 = 60; Sword: 100 - (2*10 + 30) = 50; Potion: 10 - 30 = -20.
	assert.Equal(t, "Enchanted Cloak", entries[0].Name)
	assert.Equal(t, 60.0, entries[0].Profit)
	assert.Equal(t, "Ice Sword", entries[1].Name)
	assert.Equal(t, 50.0, entries[1].Profit)
	assert.Equal(t, "Frost Potion", entries[2].Name)
	assert.Equal(t, -20.0, entries[2].Profit)
}

func TestCapability_FilterItemsByMaterialProfile(t *testing.T) {
	tests := []struct {
		name     string
		args     string
		expected []string
	}{
		{
			name:     "exclusive profession",
			args:     `{"materialTypes": "profession", "matchProfile": "exclusive"}`,
			expected: []string{"Enchanted Cloak"},
		},
		{
			name:     "exclusive is the default profile",
			args:     `{"materialTypes": "profession"}`,
			expected: []string{"Enchanted Cloak"},
		},
		{
			name:     "contains any drop",
			args:     `{"materialTypes": "drop", "matchProfile": "contains_any"}`,
			expected: []string{"Ice Sword", "Frost Potion"},
		},
		{
			name:     "contains all drop and buy",
			args:     `{"materialTypes": "drop,buy", "matchProfile": "contains_all"}`,
			expected: []string{"Ice Sword"},
		},
		{
			name:     "not contains any buy",
			args:     `{"materialTypes": "buy", "matchProfile": "not_contains_any"}`,
			expected: []string{"Enchanted Cloak", "Frost Potion"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockRecipesRepositoryInterface)
			registry := capabilityRegistry(t, repo)
			repo.On("List", mock.Anything, "", 0).Return(testRegistryRecipes(), nil)

			result, err := registry.Dispatch(context.Background(), "filterItemsByMaterialProfile", json.RawMessage(tt.args))

			require.NoError(t, err)
			recipes, ok := result.([]model.Recipe)
			require.True(t, ok)

			names := make([]string, 0, len(recipes))
			for _, r := range recipes {
				names = append(names, r.Name)
			}
			assert.ElementsMatch(t, tt.expected, names)
		})
	}

	t.Run("invalid material type", func(t *testing.T) {
		registry := capabilityRegistry(t, new(mocks.MockRecipesRepositoryInterface))

		_, err := registry.Dispatch(context.Background(), "filterItemsByMaterialProfile", json.RawMessage(`{"materialTypes": "legendary"}`))

		assert.Error(t, err)
	})

	t.Run("invalid match profile", func(t *testing.T) {
		registry := capabilityRegistry(t, new(mocks.MockRecipesRepositoryInterface))

		_, err := registry.Dispatch(context.Background(), "filterItemsByMaterialProfile", json.RawMessage(`{"materialTypes": "drop", "matchProfile": "sometimes"}`))

		assert.Error(t, err)
	})
}

func TestCapability_GetMaterialUsageSummary(t *testing.T) {
	repo := new(mocks.MockRecipesRepositoryInterface)
	registry := capabilityRegistry(t, repo)
	repo.On("List", mock.Anything, "", 0).Return(testRegistryRecipes(), nil)

	result, err := registry.Dispatch(context.Background(), "getMaterialUsageSummary", nil)

	require.NoError(t, err)
	entries, ok := result.([]MaterialUsageEntry)
	require.True(t, ok)
	require.Len(t, entries, 3)

	// Ice Crystal: 2 (sword) + 3 (potion) = 5, used in two recipes.
	assert.Equal(t, "Ice Crystal", entries[0].MaterialName)
	assert.Equal(t, 5, entries[0].TotalQuantity)
	assert.Equal(t, 2, entries[0].RecipeCount)
	assert.ElementsMatch(t, []string{"Ice Sword", "Frost Potion"}, entries[0].UsedIn)
}

func TestCapability_GetMaterialUsageSummary_Filters(t *testing.T) {
	repo := new(mocks.MockRecipesRepositoryInterface)
	registry := capabilityRegistry(t, repo)
	repo.On("List", mock.Anything, "", 0).Return(testRegistryRecipes(), nil)

	result, err := registry.Dispatch(context.Background(), "getMaterialUsageSummary", json.RawMessage(`{"materialTypes": "profession"}`))

	require.NoError(t, err)
	entries, ok := result.([]MaterialUsageEntry)
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "Enchanted Thread", entries[0].MaterialName)

	result, err = registry.Dispatch(context.Background(), "getMaterialUsageSummary", json.RawMessage(`{"materialName": "crystal"}`))

	require.NoError(t, err)
	entries, ok = result.([]MaterialUsageEntry)
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "Ice Crystal", entries[0].MaterialName)
}

func TestCapability_CheckCraftingPossibilities(t *testing.T) {
	repo := new(mocks.MockRecipesRepositoryInterface)
	registry := capabilityRegistry(t, repo)
	repo.On("List", mock.Anything, "", 0).Return(testRegistryRecipes(), nil)

	args := `{"availableMaterials": [
		{"material_name": "Ice Crystal", "quantity": 7},
		{"material_name": "Iron Plate", "quantity": 1}
	]}`

	result, err := registry.Dispatch(context.Background(), "checkCraftingPossibilities", json.RawMessage(args))

	require.NoError(t, err)
	possibilities, ok := result.([]CraftingPossibility)
	require.True(t, ok)

	// Frost Potion: 7/3 = 2 packs. Ice Sword: min(7/2, 1/1) = 1 pack.
	// Enchanted Cloak needs thread the user does not own, so it is omitted.
	require.Len(t, possibilities, 2)
	assert.Equal(t, CraftingPossibility{Name: "Frost Potion", CraftablePacks: 2}, possibilities[0])
	assert.Equal(t, CraftingPossibility{Name: "Ice Sword", CraftablePacks: 1}, possibilities[1])
}

func TestCapability_CheckCraftingPossibilities_EmptyInventory(t *testing.T) {
	registry := capabilityRegistry(t, new(mocks.MockRecipesRepositoryInterface))

	_, err := registry.Dispatch(context.Background(), "checkCraftingPossibilities", json.RawMessage(`{"availableMaterials": []}`))

	assert.Error(t, err)
}
