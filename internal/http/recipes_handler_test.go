package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/raitocraft/craft-service/internal/domain/dto"
	"github.com/raitocraft/craft-service/internal/domain/model"
	"github.com/raitocraft/craft-service/internal/mocks"
)

const recipeBody = `{
	"name": "Ice Sword",
	"quantity_produced": 1,
	"npc_sell_price": 1200,
	"materials": [
		{"material_name": "Ice Crystal", "quantity": 3, "material_type": "drop", "default_npc_price": 50}
	]
}`

func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func duplicateNameError() error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: "duplicate key error"},
		},
	}
}

func TestListRecipes(t *testing.T) {
	t.Run("returns recipes", func(t *testing.T) {
		repo := new(mocks.MockRecipesRepositoryInterface)
		repo.On("List", mock.Anything, "", 0).Return([]model.Recipe{*iceSwordRecipe()}, nil)
		router := setupRouterWithRepo(repo)

		req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		recipes, ok := resp.Data.([]interface{})
		require.True(t, ok)
		assert.Len(t, recipes, 1)
		repo.AssertExpectations(t)
	})

	t.Run("passes search and limit through", func(t *testing.T) {
		repo := new(mocks.MockRecipesRepositoryInterface)
		repo.On("List", mock.Anything, "ice", 10).Return([]model.Recipe{}, nil)
		router := setupRouterWithRepo(repo)

		req := httptest.NewRequest(http.MethodGet, "/api/items?search=ice&limit=10", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("ignores a non-numeric limit", func(t *testing.T) {
		repo := new(mocks.MockRecipesRepositoryInterface)
		repo.On("List", mock.Anything, "", 0).Return([]model.Recipe{}, nil)
		router := setupRouterWithRepo(repo)

		req := httptest.NewRequest(http.MethodGet, "/api/items?limit=abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("repository failure returns 500", func(t *testing.T) {
		repo := new(mocks.MockRecipesRepositoryInterface)
		repo.On("List", mock.Anything, "", 0).Return(nil, assert.AnError)
		router := setupRouterWithRepo(repo)

		req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, dto.ErrCodeInternal, decodeErrorResponse(t, w).Error)
	})
}

func TestGetRecipe(t *testing.T) {
	t.Run("returns the recipe", func(t *testing.T) {
		recipe := iceSwordRecipe()
		repo := new(mocks.MockRecipesRepositoryInterface)
		repo.On("GetByID", mock.Anything, recipe.ID).Return(recipe, nil)
		router := setupRouterWithRepo(repo)

		req := httptest.NewRequest(http.MethodGet, "/api/items/"+recipe.ID.Hex()+"/recipe", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Ice Sword")
		repo.AssertExpectations(t)
	})

	t.Run("invalid id returns 400", func(t *testing.T) {
		router := setupRouterWithRepo(new(mocks.MockRecipesRepositoryInterface))

		req := httptest.NewRequest(http.MethodGet, "/api/items/not-an-id/recipe", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidRequest, decodeErrorResponse(t, w).Error)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		repo := new(mocks.MockRecipesRepositoryInterface)
		repo.On("GetByID", mock.Anything, mock.Anything).Return(nil, nil)
		router := setupRouterWithRepo(repo)

		req := httptest.NewRequest(http.MethodGet, "/api/items/"+primitive.NewObjectID().Hex()+"/recipe", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrCodeNotFound, decodeErrorResponse(t, w).Error)
	})
}

func TestCreateRecipe(t *testing.T) {
	t.Run("creates a recipe", func(t *testing.T) {
		created := iceSwordRecipe()
		repo := new(mocks.MockRecipesRepositoryInterface)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(r model.Recipe) bool {
			return r.Name == "Ice Sword" && len(r.Materials) == 1
		})).Return(created, nil)
		router := setupRouterWithRepo(repo)

		req := httptest.NewRequest(http.MethodPost, "/api/items", bytes.NewBufferString(recipeBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Ice Sword")
		repo.AssertExpectations(t)
	})

	t.Run("invalid JSON returns 400", func(t *testing.T) {
		router := setupRouterWithRepo(new(mocks.MockRecipesRepositoryInterface))

		req := httptest.NewRequest(http.MethodPost, "/api/items", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidRequest, decodeErrorResponse(t, w).Error)
	})

	t.Run("invalid material type returns 400 with the field name", func(t *testing.T) {
		router := setupRouterWithRepo(new(mocks.MockRecipesRepositoryInterface))

		body := `{
			"name": "Ice Sword",
			"quantity_produced": 1,
			"materials": [
				{"material_name": "Ice Crystal", "quantity": 3, "material_type": "loot"}
			]
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/items", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeErrorResponse(t, w).Message, "materials[0].material_type")
	})

	t.Run("duplicate name returns 409", func(t *testing.T) {
		repo := new(mocks.MockRecipesRepositoryInterface)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, duplicateNameError())
		router := setupRouterWithRepo(repo)

		req := httptest.NewRequest(http.MethodPost, "/api/items", bytes.NewBufferString(recipeBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, dto.ErrCodeConflict, decodeErrorResponse(t, w).Error)
	})
}

func TestUpdateRecipe(t *testing.T) {
	t.Run("updates a recipe", func(t *testing.T) {
		updated := iceSwordRecipe()
		repo := new(mocks.MockRecipesRepositoryInterface)
		repo.On("Update", mock.Anything, updated.ID, mock.Anything).Return(updated, nil)
		router := setupRouterWithRepo(repo)

		req := httptest.NewRequest(http.MethodPut, "/api/items/"+updated.ID.Hex(), bytes.NewBufferString(recipeBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("invalid id returns 400", func(t *testing.T) {
		router := setupRouterWithRepo(new(mocks.MockRecipesRepositoryInterface))

		req := httptest.NewRequest(http.MethodPut, "/api/items/not-an-id", bytes.NewBufferString(recipeBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		repo := new(mocks.MockRecipesRepositoryInterface)
		repo.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
		router := setupRouterWithRepo(repo)

		req := httptest.NewRequest(http.MethodPut, "/api/items/"+primitive.NewObjectID().Hex(), bytes.NewBufferString(recipeBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("duplicate name returns 409", func(t *testing.T) {
		repo := new(mocks.MockRecipesRepositoryInterface)
		repo.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil, duplicateNameError())
		router := setupRouterWithRepo(repo)

		req := httptest.NewRequest(http.MethodPut, "/api/items/"+primitive.NewObjectID().Hex(), bytes.NewBufferString(recipeBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestDeleteRecipe(t *testing.T) {
	t.Run("deletes a recipe", func(t *testing.T) {
		id := primitive.NewObjectID()
		repo := new(mocks.MockRecipesRepositoryInterface)
		repo.On("Delete", mock.Anything, id).Return(true, nil)
		router := setupRouterWithRepo(repo)

		req := httptest.NewRequest(http.MethodDelete, "/api/items/"+id.Hex(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deleted":true`)
		repo.AssertExpectations(t)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		repo := new(mocks.MockRecipesRepositoryInterface)
		repo.On("Delete", mock.Anything, mock.Anything).Return(false, nil)
		router := setupRouterWithRepo(repo)

		req := httptest.NewRequest(http.MethodDelete, "/api/items/"+primitive.NewObjectID().Hex(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id returns 400", func(t *testing.T) {
		router := setupRouterWithRepo(new(mocks.MockRecipesRepositoryInterface))

		req := httptest.NewRequest(http.MethodDelete, "/api/items/not-an-id", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
