package client

import (
	"FoodHub/domain"
	"FoodHub/entities"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// RecipeState mirrors the recipes of one category.
type RecipeState struct {
	CategoryID string             `json:"categoryId"`
	Recipes    []*entities.Recipe `json:"recipes"`
}

type RecipeInput struct {
	Name        string
	Description string
	Price       float64
	Ingredients []domain.IngredientRequest
	Image       *File
}

type RecipeStore struct {
	store[RecipeState]
	client *Client
}

func NewRecipeStore(client *Client, persist Persister, notifier Notifier) *RecipeStore {
	s := &RecipeStore{client: client}
	s.setup("recipes", persist, notifier)
	return s
}

// Open switches the mirror to categoryID and fetches its recipes.
func (s *RecipeStore) Open(ctx context.Context, categoryID string) error {
	if err := s.update(func(st *RecipeState) {
		if st.CategoryID != categoryID {
			*st = RecipeState{CategoryID: categoryID}
		}
	}); err != nil {
		return err
	}
	return s.Fetch(ctx)
}

func (s *RecipeStore) Sync(ctx context.Context) error {
	if err := s.restore(); err != nil {
		return err
	}
	return s.Fetch(ctx)
}

// Fetch refreshes the recipes of the open category. With no category open
// it does nothing.
func (s *RecipeStore) Fetch(ctx context.Context) error {
	categoryID := s.Snapshot().CategoryID
	if categoryID == "" {
		return nil
	}

	var out struct {
		Category *entities.Category `json:"category"`
	}
	if _, err := s.client.doJSON(ctx, http.MethodGet, "/api/v1/category/"+url.PathEscape(categoryID), nil, &out); err != nil {
		return s.fail(err)
	}
	return s.update(func(st *RecipeState) {
		if st.CategoryID == categoryID {
			st.Recipes = out.Category.Recipes
		}
	})
}

// Create adds a recipe to the open category. The newest recipe comes first.
func (s *RecipeStore) Create(ctx context.Context, in RecipeInput) (*entities.Recipe, error) {
	categoryID := s.Snapshot().CategoryID
	fields, err := in.fields()
	if err != nil {
		return nil, err
	}
	fields["categoryId"] = []string{categoryID}

	var out struct {
		Recipe *entities.Recipe `json:"recipe"`
	}
	msg, err := s.client.doMultipart(ctx, http.MethodPost, "/api/v1/recipe", fields, in.Image, &out)
	if err != nil {
		return nil, s.fail(err)
	}
	s.ok(msg)

	err = s.update(func(st *RecipeState) {
		if st.CategoryID == categoryID {
			st.Recipes = append([]*entities.Recipe{out.Recipe}, st.Recipes...)
		}
	})
	return out.Recipe, err
}

// Update sends only the non-empty fields of in.
func (s *RecipeStore) Update(ctx context.Context, id string, in RecipeInput) (*entities.Recipe, error) {
	fields, err := in.fields()
	if err != nil {
		return nil, err
	}

	var out struct {
		Recipe *entities.Recipe `json:"recipe"`
	}
	msg, err := s.client.doMultipart(ctx, http.MethodPut, "/api/v1/recipe/"+url.PathEscape(id), fields, in.Image, &out)
	if err != nil {
		return nil, s.fail(err)
	}
	s.ok(msg)

	err = s.update(func(st *RecipeState) {
		recipes := make([]*entities.Recipe, 0, len(st.Recipes))
		for _, r := range st.Recipes {
			if r.ID == out.Recipe.ID {
				r = out.Recipe
			}
			recipes = append(recipes, r)
		}
		st.Recipes = recipes
	})
	return out.Recipe, err
}

func (s *RecipeStore) Delete(ctx context.Context, id string) error {
	body := domain.DeleteRecipeRequest{CategoryID: s.Snapshot().CategoryID}
	msg, err := s.client.doJSON(ctx, http.MethodDelete, "/api/v1/recipe/"+url.PathEscape(id), body, nil)
	if err != nil {
		return s.fail(err)
	}
	s.ok(msg)
	return s.update(func(st *RecipeState) {
		st.Recipes = removeWhere(st.Recipes, func(r *entities.Recipe) bool { return r.ID.String() == id })
	})
}

func (in RecipeInput) fields() (map[string][]string, error) {
	fields := map[string][]string{}
	if in.Name != "" {
		fields["name"] = []string{in.Name}
	}
	if in.Description != "" {
		fields["description"] = []string{in.Description}
	}
	if in.Price != 0 {
		fields["price"] = []string{strconv.FormatFloat(in.Price, 'f', -1, 64)}
	}
	if len(in.Ingredients) > 0 {
		raw, err := json.Marshal(in.Ingredients)
		if err != nil {
			return nil, err
		}
		fields["ingredients"] = []string{string(raw)}
	}
	return fields, nil
}
