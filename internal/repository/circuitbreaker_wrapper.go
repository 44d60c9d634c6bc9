// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/raitocraft/craft-service/internal/circuitbreaker"
	"github.com/raitocraft/craft-service/internal/domain/model"
)

// RecipesRepositoryWithCircuitBreaker wraps RecipesRepository with circuit breaker protection.
type RecipesRepositoryWithCircuitBreaker struct {
	repo           *RecipesRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewRecipesRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewRecipesRepositoryWithCircuitBreaker(repo *RecipesRepository, cb *circuitbreaker.CircuitBreaker) *RecipesRepositoryWithCircuitBreaker {
	return &RecipesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// List returns recipes with circuit breaker protection.
func (r *RecipesRepositoryWithCircuitBreaker) List(ctx context.Context, search string, limit int) ([]model.Recipe, error) {
	var result []model.Recipe
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, search, limit)
		return cbErr
	})
	return result, err
}

// GetByID returns a recipe by id with circuit breaker protection.
func (r *RecipesRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Recipe, error) {
	var result *model.Recipe
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, id)
		return cbErr
	})
	return result, err
}

// GetByName returns a recipe by name with circuit breaker protection.
func (r *RecipesRepositoryWithCircuitBreaker) GetByName(ctx context.Context, name string) (*model.Recipe, error) {
	var result *model.Recipe
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByName(ctx, name)
		return cbErr
	})
	return result, err
}

// FindByMaterial returns recipes consuming a material with circuit breaker protection.
func (r *RecipesRepositoryWithCircuitBreaker) FindByMaterial(ctx context.Context, materialName string) ([]model.Recipe, error) {
	var result []model.Recipe
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByMaterial(ctx, materialName)
		return cbErr
	})
	return result, err
}

// Create inserts a recipe with circuit breaker protection.
func (r *RecipesRepositoryWithCircuitBreaker) Create(ctx context.Context, recipe model.Recipe) (*model.Recipe, error) {
	var result *model.Recipe
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, recipe)
		return cbErr
	})
	return result, err
}

// Update updates a recipe with circuit breaker protection.
func (r *RecipesRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, recipe model.Recipe) (*model.Recipe, error) {
	var result *model.Recipe
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, recipe)
		return cbErr
	})
	return result, err
}

// Delete removes a recipe with circuit breaker protection.
func (r *RecipesRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	var result bool
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Delete(ctx, id)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *RecipesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
