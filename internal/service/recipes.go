package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/raitocraft/craft-service/internal/domain/model"
	"github.com/raitocraft/craft-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// ErrDuplicateRecipeName is returned when a create or update collides
// with an existing recipe name.
var ErrDuplicateRecipeName = errors.New("a recipe with that name already exists")

// RecipeService provides recipe registry operations.
type RecipeService interface {
	List(ctx context.Context, search string, limit int) ([]model.Recipe, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Recipe, error)
	GetByName(ctx context.Context, name string) (*model.Recipe, error)
	FindByMaterial(ctx context.Context, materialName string) ([]model.Recipe, error)
	Create(ctx context.Context, recipe model.Recipe) (*model.Recipe, error)
	Update(ctx context.Context, id primitive.ObjectID, recipe model.Recipe) (*model.Recipe, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// RecipeServiceImpl implements RecipeService over the recipes repository.
type RecipeServiceImpl struct {
	recipesRepo repository.RecipesRepositoryInterface
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(recipesRepo repository.RecipesRepositoryInterface) RecipeService {
	return &RecipeServiceImpl{
		recipesRepo: recipesRepo,
	}
}

func (s *RecipeServiceImpl) List(ctx context.Context, search string, limit int) ([]model.Recipe, error) {
	if s.recipesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.recipesRepo.List(ctx, search, limit)
}

func (s *RecipeServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Recipe, error) {
	if s.recipesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.recipesRepo.GetByID(ctx, id)
}

func (s *RecipeServiceImpl) GetByName(ctx context.Context, name string) (*model.Recipe, error) {
	if s.recipesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.recipesRepo.GetByName(ctx, name)
}

func (s *RecipeServiceImpl) FindByMaterial(ctx context.Context, materialName string) ([]model.Recipe, error) {
	if s.recipesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.recipesRepo.FindByMaterial(ctx, materialName)
}

func (s *RecipeServiceImpl) Create(ctx context.Context, recipe model.Recipe) (*model.Recipe, error) {
	if s.recipesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	created, err := s.recipesRepo.Create(ctx, recipe)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateRecipeName
	}
	return created, err
}

func (s *RecipeServiceImpl) Update(ctx context.Context, id primitive.ObjectID, recipe model.Recipe) (*model.Recipe, error) {
	if s.recipesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	updated, err := s.recipesRepo.Update(ctx, id, recipe)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateRecipeName
	}
	return updated, err
}

func (s *RecipeServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if s.recipesRepo == nil {
		return false, ErrRepositoryNotConfigured
	}
	return s.recipesRepo.Delete(ctx, id)
}
