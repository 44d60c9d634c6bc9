// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/raitocraft/craft-service/internal/domain/model"
)

// RecipesRepositoryInterface defines the interface for recipe repository operations.
type RecipesRepositoryInterface interface {
	List(ctx context.Context, search string, limit int) ([]model.Recipe, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Recipe, error)
	GetByName(ctx context.Context, name string) (*model.Recipe, error)
	FindByMaterial(ctx context.Context, materialName string) ([]model.Recipe, error)
	Create(ctx context.Context, recipe model.Recipe) (*model.Recipe, error)
	Update(ctx context.Context, id primitive.ObjectID, recipe model.Recipe) (*model.Recipe, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
