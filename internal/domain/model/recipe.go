// Package model defines the core domain entities for the craft service.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaterialType classifies how a material is obtained.
type MaterialType string

const (
	// MaterialTypeDrop marks materials obtained from drops and bought on the market.
	MaterialTypeDrop MaterialType = "drop"
	// MaterialTypeBuy marks materials bought on the market or from NPCs.
	MaterialTypeBuy MaterialType = "buy"
	// MaterialTypeProfession marks materials the player produces with a profession.
	// They carry no market price; cost comes from an optional user override.
	MaterialTypeProfession MaterialType = "profession"
)

// Valid reports whether t is one of the known material types.
func (t MaterialType) Valid() bool {
	switch t {
	case MaterialTypeDrop, MaterialTypeBuy, MaterialTypeProfession:
		return true
	}
	return false
}

// Purchasable reports whether the material is bought at a market price
// (drop and buy types), as opposed to self-produced profession materials.
func (t MaterialType) Purchasable() bool {
	return t == MaterialTypeDrop || t == MaterialTypeBuy
}

// Material is a single recipe line item. Quantity is per output batch
// (one "pack"); the total needed scales with the desired pack count.
type Material struct {
	// MaterialName identifies the material; unique within a recipe.
	MaterialName string `bson:"material_name" json:"material_name" example:"Ice Crystal"`
	// Quantity consumed per single output batch. Must be > 0.
	Quantity int `bson:"quantity" json:"quantity" example:"3"`
	// MaterialType is one of drop, buy, profession.
	MaterialType MaterialType `bson:"material_type" json:"material_type" example:"drop"`
	// DefaultNpcPrice is the NPC reference price, used to pre-seed lot inputs.
	DefaultNpcPrice int `bson:"default_npc_price" json:"default_npc_price" example:"50"`
}

// Recipe describes how one craftable item is produced.
//
// @Description A craftable item recipe with its material requirements
type Recipe struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// Name of the produced item.
	Name string `bson:"name" json:"name" example:"Ice Sword"`
	// QuantityProduced is how many items one pack yields. Must be >= 1.
	QuantityProduced int `bson:"quantity_produced" json:"quantity_produced" example:"1"`
	// NpcSellPrice is the vendor sell price per pack.
	NpcSellPrice int `bson:"npc_sell_price" json:"npc_sell_price" example:"1200"`
	// Materials required per pack.
	Materials []Material `bson:"materials" json:"materials"`
	CreatedAt time.Time  `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time  `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
} // @name Recipe

// FindMaterial returns the material with the given name, or nil.
func (r *Recipe) FindMaterial(name string) *Material {
	for i := range r.Materials {
		if r.Materials[i].MaterialName == name {
			return &r.Materials[i]
		}
	}
	return nil
}

// PurchasableMaterials returns the drop/buy materials of the recipe.
func (r *Recipe) PurchasableMaterials() []Material {
	out := make([]Material, 0, len(r.Materials))
	for _, m := range r.Materials {
		if m.MaterialType.Purchasable() {
			out = append(out, m)
		}
	}
	return out
}

// TotalNeeded returns how many units of the material are consumed when
// crafting desiredPacks packs.
func (m Material) TotalNeeded(desiredPacks int) int {
	return m.Quantity * desiredPacks
}
