package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/crucial707/recipe-share/internal/metrics"
	"github.com/crucial707/recipe-share/internal/middleware"
	"github.com/crucial707/recipe-share/internal/repo"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// ==========================
// Recipe Handler
// ==========================
type RecipeHandler struct {
	Recipes RecipeStore
}

// ==========================
// List Recipes
// ==========================
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.Recipes.List(r.Context())
	if err != nil {
		slog.Error("list recipes failed", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, recipes)
}

// ==========================
// Get Recipe
// ==========================
func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	recipe, err := h.Recipes.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			JSONError(w, "recipe not found", http.StatusNotFound)
			return
		}
		slog.Error("get recipe failed", "id", id, "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, recipe)
}

// ==========================
// Create Recipe
// ==========================

// Create persists a recipe owned by the authenticated caller. The owner is
// always taken from the verified token, never from the request body.
func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		JSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Title        string          `json:"title" validate:"required,min=1,max=200"`
		Ingredients  json.RawMessage `json:"ingredients" validate:"required"`
		Instructions string          `json:"instructions" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid json", http.StatusBadRequest)
		return
	}

	// ===== Validate input =====
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		JSONValidationError(w, "validation failed", validationFields(err), http.StatusBadRequest)
		return
	}

	ingredients, err := parseIngredients(input.Ingredients)
	if err != nil {
		JSONValidationError(w, "validation failed", map[string]string{"ingredients": err.Error()}, http.StatusBadRequest)
		return
	}

	recipe, err := h.Recipes.Create(r.Context(), userID, strings.TrimSpace(input.Title), ingredients, input.Instructions)
	if err != nil {
		slog.Error("create recipe failed", "user_id", userID, "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	metrics.IncRecipesCreated()
	writeJSON(w, http.StatusCreated, recipe)
}

// parseIngredients accepts either a JSON array of strings or a single
// comma-separated string and normalizes both into a trimmed, non-empty list.
func parseIngredients(raw json.RawMessage) ([]string, error) {
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, errors.New("must be a list of strings or a comma-separated string")
		}
		list = strings.Split(s, ",")
	}

	out := make([]string, 0, len(list))
	for _, item := range list {
		if v := strings.TrimSpace(item); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil, errors.New("must not be empty")
	}
	return out, nil
}
