// Package repository provides data access for crafting recipes.
package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/raitocraft/craft-service/internal/domain/model"
)

// RecipesRepository provides methods for recipe persistence.
type RecipesRepository struct {
	collection *mongo.Collection
}

// NewRecipesRepository creates a new recipes repository.
func NewRecipesRepository(db *MongoDB) *RecipesRepository {
	return &RecipesRepository{
		collection: db.Recipes,
	}
}

// List returns recipes sorted by name. When search is non-empty it
// filters by a case-insensitive match on the recipe name or any of its
// material names.
func (r *RecipesRepository) List(ctx context.Context, search string, limit int) ([]model.Recipe, error) {
	filter := bson.M{}
	if search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter = bson.M{
			"$or": []bson.M{
				{"name": pattern},
				{"materials.material_name": pattern},
			},
		}
	}

	opts := options.Find().SetSort(bson.M{"name": 1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var recipes []model.Recipe
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}

	return recipes, nil
}

// GetByID returns the recipe with the given id, or nil when it does not exist.
func (r *RecipesRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetByName returns the recipe whose name matches case-insensitively,
// or nil when none does.
func (r *RecipesRepository) GetByName(ctx context.Context, name string) (*model.Recipe, error) {
	pattern := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(name) + "$", Options: "i"}

	var recipe model.Recipe
	err := r.collection.FindOne(ctx, bson.M{"name": pattern}).Decode(&recipe)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// FindByMaterial returns all recipes that consume the given material,
// matched case-insensitively against the material name.
func (r *RecipesRepository) FindByMaterial(ctx context.Context, materialName string) ([]model.Recipe, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(materialName), Options: "i"}

	cursor, err := r.collection.Find(
		ctx,
		bson.M{"materials.material_name": pattern},
		options.Find().SetSort(bson.M{"name": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var recipes []model.Recipe
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}

	return recipes, nil
}

// Create inserts a new recipe and returns it with its assigned id.
func (r *RecipesRepository) Create(ctx context.Context, recipe model.Recipe) (*model.Recipe, error) {
	recipe.ID = primitive.NewObjectID()
	recipe.CreatedAt = time.Now()
	recipe.UpdatedAt = recipe.CreatedAt

	if _, err := r.collection.InsertOne(ctx, recipe); err != nil {
		return nil, err
	}

	return &recipe, nil
}

// Update replaces the mutable fields of an existing recipe and returns
// the updated document, or nil when the recipe does not exist.
func (r *RecipesRepository) Update(ctx context.Context, id primitive.ObjectID, recipe model.Recipe) (*model.Recipe, error) {
	update := bson.M{
		"$set": bson.M{
			"name":              recipe.Name,
			"quantity_produced": recipe.QuantityProduced,
			"npc_sell_price":    recipe.NpcSellPrice,
			"materials":         recipe.Materials,
			"updated_at":        time.Now(),
		},
	}

	var updated model.Recipe
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes a recipe. It reports whether a document was deleted.
func (r *RecipesRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
