package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/raitocraft/craft-service/internal/domain/model"
	"github.com/raitocraft/craft-service/internal/service"
)

// MatchProfile controls how filterItemsByMaterialProfile interprets the
// requested material types.
type MatchProfile string

const (
	// MatchExclusive keeps recipes whose materials are all of the given types.
	MatchExclusive MatchProfile = "exclusive"
	// MatchContainsAny keeps recipes with at least one material of any given type.
	MatchContainsAny MatchProfile = "contains_any"
	// MatchContainsAll keeps recipes with at least one material of each given type.
	MatchContainsAll MatchProfile = "contains_all"
	// MatchNotContainsAny keeps recipes with no material of any given type.
	MatchNotContainsAny MatchProfile = "not_contains_any"
)

// NpcProfitEntry is one row of the NPC profitability ranking.
type NpcProfitEntry struct {
	Name         string  `json:"name"`
	NpcSellPrice int     `json:"npc_sell_price"`
	MaterialCost float64 `json:"material_cost"`
	Profit       float64 `json:"profit"`
}

// MaterialUsageEntry summarizes how much of one material the whole
// registry demands for a single pack of every recipe that uses it.
type MaterialUsageEntry struct {
	MaterialName  string             `json:"material_name"`
	MaterialType  model.MaterialType `json:"material_type"`
	TotalQuantity int                `json:"total_quantity"`
	RecipeCount   int                `json:"recipe_count"`
	UsedIn        []string           `json:"used_in"`
}

// CraftingPossibility reports how many packs of a recipe an inventory supports.
type CraftingPossibility struct {
	Name           string `json:"name"`
	CraftablePacks int    `json:"craftable_packs"`
}

// AvailableMaterial is one inventory line for checkCraftingPossibilities.
type AvailableMaterial struct {
	MaterialName string `json:"material_name"`
	Quantity     int    `json:"quantity"`
}

// RegisterRecipeCapabilities wires the recipe query capabilities into
// the registry, backed by the recipe service.
func RegisterRecipeCapabilities(r *Registry, recipes service.RecipeService) {
	r.Register(Capability{
		Name:        "getRecipeByName",
		Description: "Returns the full recipe for a crafted item, including its materials, looked up by the item name.",
		Parameters: objectSchema(map[string]interface{}{
			"itemName": stringProp("Exact name of the crafted item, e.g. \"Ice Sword\"."),
		}, "itemName"),
		Handler: func(ctx context.Context, raw json.RawMessage) (interface{}, error) {
			var args struct {
				ItemName string `json:"itemName"`
			}
			if err := decodeArgs(raw, &args); err != nil {
				return nil, err
			}
			if args.ItemName == "" {
				return nil, fmt.Errorf("itemName is required")
			}
			return recipes.GetByName(ctx, args.ItemName)
		},
	})

	r.Register(Capability{
		Name:        "findCraftsByMaterial",
		Description: "Lists every crafted item whose recipe consumes the given material.",
		Parameters: objectSchema(map[string]interface{}{
			"materialName": stringProp("Exact name of the material, e.g. \"Ice Crystal\"."),
		}, "materialName"),
		Handler: func(ctx context.Context, raw json.RawMessage) (interface{}, error) {
			var args struct {
				MaterialName string `json:"materialName"`
			}
			if err := decodeArgs(raw, &args); err != nil {
				return nil, err
			}
			if args.MaterialName == "" {
				return nil, fmt.Errorf("materialName is required")
			}
			return recipes.FindByMaterial(ctx, args.MaterialName)
		},
	})

	r.Register(Capability{
		Name:        "getMostProfitableItemsByNpcPrice",
		Description: "Ranks crafted items by profit when every material is valued at its NPC price and the item is sold to the NPC, most profitable first.",
		Parameters:  objectSchema(map[string]interface{}{}),
		Handler: func(ctx context.Context, raw json.RawMessage) (interface{}, error) {
			all, err := recipes.List(ctx, "", 0)
			if err != nil {
				return nil, err
			}
			entries := make([]NpcProfitEntry, 0, len(all))
			for _, recipe := range all {
				var cost float64
				for _, material := range recipe.Materials {
					cost += float64(material.Quantity * material.DefaultNpcPrice)
				}
				entries = append(entries, NpcProfitEntry{
					Name:         recipe.Name,
					NpcSellPrice: recipe.NpcSellPrice,
					MaterialCost: cost,
					Profit:       float64(recipe.NpcSellPrice) - cost,
				})
			}
			sort.Slice(entries, func(i, j int) bool { return entries[i].Profit > entries[j].Profit })
			return entries, nil
		},
	})

	r.Register(Capability{
		Name:        "filterItemsByMaterialProfile",
		Description: "Filters crafted items by the type profile of their materials, e.g. items made exclusively from profession materials, or items with no drop materials.",
		Parameters: objectSchema(map[string]interface{}{
			"materialTypes": stringProp("Comma-separated material types to consider. Valid types: \"profession\", \"drop\", \"buy\"."),
			"matchProfile":  enumProp("How the types must match: \"exclusive\", \"contains_any\", \"contains_all\" or \"not_contains_any\". Defaults to \"exclusive\".", "exclusive", "contains_any", "contains_all", "not_contains_any"),
		}, "materialTypes"),
		Handler: func(ctx context.Context, raw json.RawMessage) (interface{}, error) {
			var args struct {
				MaterialTypes string `json:"materialTypes"`
				MatchProfile  string `json:"matchProfile"`
			}
			if err := decodeArgs(raw, &args); err != nil {
				return nil, err
			}
			types, err := parseMaterialTypes(args.MaterialTypes)
			if err != nil {
				return nil, err
			}
			profile := MatchProfile(args.MatchProfile)
			if profile == "" {
				profile = MatchExclusive
			}
			switch profile {
			case MatchExclusive, MatchContainsAny, MatchContainsAll, MatchNotContainsAny:
			default:
				return nil, fmt.Errorf("invalid matchProfile %q", args.MatchProfile)
			}

			all, err := recipes.List(ctx, "", 0)
			if err != nil {
				return nil, err
			}
			filtered := make([]model.Recipe, 0, len(all))
			for _, recipe := range all {
				if matchesProfile(recipe, types, profile) {
					filtered = append(filtered, recipe)
				}
			}
			return filtered, nil
		},
	})

	r.Register(Capability{
		Name:        "getMaterialUsageSummary",
		Description: "Summarizes material demand across all recipes: total quantity needed per material and which recipes use it. Optionally filtered by material name or types.",
		Parameters: objectSchema(map[string]interface{}{
			"materialName":  stringProp("Name (or part of the name) of one material to filter by. Optional."),
			"materialTypes": stringProp("Comma-separated material types to include. Optional; all types when omitted."),
		}),
		Handler: func(ctx context.Context, raw json.RawMessage) (interface{}, error) {
			var args struct {
				MaterialName  string `json:"materialName"`
				MaterialTypes string `json:"materialTypes"`
			}
			if err := decodeArgs(raw, &args); err != nil {
				return nil, err
			}
			var types map[model.MaterialType]bool
			if args.MaterialTypes != "" {
				var err error
				types, err = parseMaterialTypes(args.MaterialTypes)
				if err != nil {
					return nil, err
				}
			}

			all, err := recipes.List(ctx, "", 0)
			if err != nil {
				return nil, err
			}
			return summarizeUsage(all, args.MaterialName, types), nil
		},
	})

	r.Register(Capability{
		Name:        "checkCraftingPossibilities",
		Description: "Given the materials the user has and their quantities, reports which items can be crafted and how many packs of each.",
		Parameters: objectSchema(map[string]interface{}{
			"availableMaterials": map[string]interface{}{
				"type":        "array",
				"description": "Materials the user owns.",
				"items": objectSchema(map[string]interface{}{
					"material_name": stringProp("Name of the owned material."),
					"quantity":      map[string]interface{}{"type": "number", "description": "Owned quantity."},
				}, "material_name", "quantity"),
			},
		}, "availableMaterials"),
		Handler: func(ctx context.Context, raw json.RawMessage) (interface{}, error) {
			var args struct {
				AvailableMaterials []AvailableMaterial `json:"availableMaterials"`
			}
			if err := decodeArgs(raw, &args); err != nil {
				return nil, err
			}
			if len(args.AvailableMaterials) == 0 {
				return nil, fmt.Errorf("availableMaterials is required")
			}

			all, err := recipes.List(ctx, "", 0)
			if err != nil {
				return nil, err
			}
			return checkPossibilities(all, args.AvailableMaterials), nil
		},
	})
}

// matchesProfile applies one match profile to a recipe's material types.
func matchesProfile(recipe model.Recipe, types map[model.MaterialType]bool, profile MatchProfile) bool {
	if len(recipe.Materials) == 0 {
		return false
	}

	present := make(map[model.MaterialType]bool, 3)
	for _, material := range recipe.Materials {
		present[material.MaterialType] = true
	}

	switch profile {
	case MatchExclusive:
		for t := range present {
			if !types[t] {
				return false
			}
		}
		return true
	case MatchContainsAny:
		for t := range types {
			if present[t] {
				return true
			}
		}
		return false
	case MatchContainsAll:
		for t := range types {
			if !present[t] {
				return false
			}
		}
		return true
	case MatchNotContainsAny:
		for t := range types {
			if present[t] {
				return false
			}
		}
		return true
	}
	return false
}

// summarizeUsage aggregates per-material demand over one pack of every recipe.
func summarizeUsage(all []model.Recipe, nameFilter string, types map[model.MaterialType]bool) []MaterialUsageEntry {
	nameFilter = strings.ToLower(nameFilter)
	byName := make(map[string]*MaterialUsageEntry)

	for _, recipe := range all {
		for _, material := range recipe.Materials {
			if types != nil && !types[material.MaterialType] {
				continue
			}
			if nameFilter != "" && !strings.Contains(strings.ToLower(material.MaterialName), nameFilter) {
				continue
			}
			entry, ok := byName[material.MaterialName]
			if !ok {
				entry = &MaterialUsageEntry{
					MaterialName: material.MaterialName,
					MaterialType: material.MaterialType,
				}
				byName[material.MaterialName] = entry
			}
			entry.TotalQuantity += material.Quantity
			entry.RecipeCount++
			entry.UsedIn = append(entry.UsedIn, recipe.Name)
		}
	}

	entries := make([]MaterialUsageEntry, 0, len(byName))
	for _, entry := range byName {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalQuantity != entries[j].TotalQuantity {
			return entries[i].TotalQuantity > entries[j].TotalQuantity
		}
		return entries[i].MaterialName < entries[j].MaterialName
	})
	return entries
}

// checkPossibilities computes, per recipe, the maximum pack count the
// inventory supports. Recipes that cannot be crafted at all are omitted.
func checkPossibilities(all []model.Recipe, available []AvailableMaterial) []CraftingPossibility {
	inventory := make(map[string]int, len(available))
	for _, line := range available {
		inventory[strings.ToLower(line.MaterialName)] += line.Quantity
	}

	var possibilities []CraftingPossibility
	for _, recipe := range all {
		if len(recipe.Materials) == 0 {
			continue
		}
		craftable := -1
		for _, material := range recipe.Materials {
			if material.Quantity <= 0 {
				continue
			}
			owned := inventory[strings.ToLower(material.MaterialName)]
			packs := owned / material.Quantity
			if craftable == -1 || packs < craftable {
				craftable = packs
			}
		}
		if craftable > 0 {
			possibilities = append(possibilities, CraftingPossibility{
				Name:           recipe.Name,
				CraftablePacks: craftable,
			})
		}
	}

	sort.Slice(possibilities, func(i, j int) bool {
		if possibilities[i].CraftablePacks != possibilities[j].CraftablePacks {
			return possibilities[i].CraftablePacks > possibilities[j].CraftablePacks
		}
		return possibilities[i].Name < possibilities[j].Name
	})
	return possibilities
}

// parseMaterialTypes parses a comma-separated type list into a set.
func parseMaterialTypes(raw string) (map[model.MaterialType]bool, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("materialTypes is required")
	}
	types := make(map[model.MaterialType]bool)
	for _, part := range strings.Split(raw, ",") {
		t := model.MaterialType(strings.TrimSpace(strings.ToLower(part)))
		if !t.Valid() {
			return nil, fmt.Errorf("invalid material type %q", part)
		}
		types[t] = true
	}
	return types, nil
}

func decodeArgs(raw json.RawMessage, out interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("invalid capability arguments: %w", err)
	}
	return nil
}

// objectSchema builds a JSON-schema object declaration.
func objectSchema(properties map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description}
}

func enumProp(description string, values ...string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description, "enum": values}
}
