package client

import (
	"FoodHub/domain"
	"FoodHub/entities"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogAPI records the last request it saw for each route.
type catalogAPI struct {
	mu       sync.Mutex
	category *entities.Category
	query    string
	form     map[string][]string
	fileName string
	body     map[string]string
}

func (a *catalogAPI) last() (string, map[string][]string, string, map[string]string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.query, a.form, a.fileName, a.body
}

func (a *catalogAPI) recordForm(r *http.Request) {
	_ = r.ParseMultipartForm(1 << 20)
	a.mu.Lock()
	defer a.mu.Unlock()
	a.form = r.MultipartForm.Value
	a.fileName = ""
	if files := r.MultipartForm.File["image"]; len(files) > 0 {
		a.fileName = files[0].Filename
	}
}

func (a *catalogAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/category", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "categories": []*entities.Category{a.category}})
	})
	mux.HandleFunc("GET /api/v1/category/search", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.query = r.URL.RawQuery
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "categories": []*entities.Category{a.category}})
	})
	mux.HandleFunc("GET /api/v1/category/{id}", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		if r.PathValue("id") != a.category.ID.String() {
			writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": domain.MessageFailedGetCategory, "error": domain.ErrCategoryNotFound.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "category": a.category})
	})
	mux.HandleFunc("POST /api/v1/category", func(w http.ResponseWriter, r *http.Request) {
		a.recordForm(r)
		writeJSON(w, http.StatusCreated, map[string]any{"success": true, "message": domain.MessageSuccessCreateCategory})
	})
	mux.HandleFunc("PUT /api/v1/category/{id}", func(w http.ResponseWriter, r *http.Request) {
		a.recordForm(r)
		a.mu.Lock()
		defer a.mu.Unlock()
		updated := *a.category
		if names := a.form["name"]; len(names) > 0 {
			updated.Name = names[0]
		}
		if cuisines, ok := a.form["cuisines[]"]; ok {
			updated.Cuisines = cuisines
		}
		a.category = &updated
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": domain.MessageSuccessUpdateCategory, "category": a.category})
	})
	mux.HandleFunc("POST /api/v1/recipe", func(w http.ResponseWriter, r *http.Request) {
		a.recordForm(r)
		a.mu.Lock()
		defer a.mu.Unlock()
		var ingredients []entities.Ingredient
		_ = json.Unmarshal([]byte(a.form["ingredients"][0]), &ingredients)
		created := &entities.Recipe{ID: uuid.New(), Name: a.form["name"][0], Ingredients: ingredients}
		a.category.Recipes = append([]*entities.Recipe{created}, a.category.Recipes...)
		writeJSON(w, http.StatusCreated, map[string]any{"success": true, "message": domain.MessageSuccessCreateRecipe, "recipe": created})
	})
	mux.HandleFunc("DELETE /api/v1/recipe/{id}", func(w http.ResponseWriter, r *http.Request) {
		body := map[string]string{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		a.mu.Lock()
		defer a.mu.Unlock()
		a.body = body
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": domain.MessageSuccessDeleteRecipe})
	})
	return mux
}

func newCatalog(t *testing.T) (*catalogAPI, *Client) {
	t.Helper()
	api := &catalogAPI{category: &entities.Category{ID: uuid.New(), Name: "Pizza", Cuisines: []string{"Italian"}}}
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	return api, c
}

func TestCategoryStore_CreateSendsListAndRefetches(t *testing.T) {
	api, c := newCatalog(t)
	notifier := &recordingNotifier{}
	categories := NewCategoryStore(c, nil, notifier)

	name := "Pizza"
	err := categories.Create(context.Background(), CategoryInput{
		Name:     &name,
		Cuisines: []string{"Italian", "Fast, Food"},
		Image:    &File{Name: "pizza.png", Data: []byte("png")},
	})
	require.NoError(t, err)

	_, form, fileName, _ := api.last()
	assert.Equal(t, []string{"Pizza"}, form["name"])
	assert.Equal(t, []string{"Italian", "Fast, Food"}, form["cuisines[]"])
	assert.Equal(t, "pizza.png", fileName)
	assert.Len(t, categories.Snapshot().Categories, 1)
	assert.Equal(t, []string{domain.MessageSuccessCreateCategory}, notifier.successes)
}

func TestCategoryStore_UpdateLeavesUnsetFields(t *testing.T) {
	api, c := newCatalog(t)
	categories := NewCategoryStore(c, nil, nil)
	ctx := context.Background()
	require.NoError(t, categories.Sync(ctx))

	id := categories.Snapshot().Categories[0].ID.String()
	_, err := categories.Get(ctx, id)
	require.NoError(t, err)

	updated, err := categories.Update(ctx, id, CategoryInput{Cuisines: []string{"Neapolitan"}})
	require.NoError(t, err)
	assert.Equal(t, "Pizza", updated.Name)
	assert.Equal(t, []string{"Neapolitan"}, updated.Cuisines)

	_, form, _, _ := api.last()
	assert.NotContains(t, form, "name")
	assert.Equal(t, []string{"Neapolitan"}, categories.Snapshot().Categories[0].Cuisines)
	assert.Equal(t, []string{"Neapolitan"}, categories.Snapshot().Current.Cuisines)
}

func TestCategoryStore_SearchAndMissing(t *testing.T) {
	api, c := newCatalog(t)
	categories := NewCategoryStore(c, nil, nil)
	ctx := context.Background()

	results, err := categories.Search(ctx, "piz", []string{"Italian", "Thai"})
	require.NoError(t, err)
	assert.Len(t, results, 1)
	query, _, _, _ := api.last()
	assert.Equal(t, "searchText=piz&selectedCuisines=Italian%2CThai", query)

	_, err = categories.Get(ctx, uuid.NewString())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, domain.ErrCategoryNotFound.Error(), apiErr.Detail)
}

func TestRecipeStore_CreateAndDelete(t *testing.T) {
	api, c := newCatalog(t)
	recipes := NewRecipeStore(c, newPersister(t), nil)
	ctx := context.Background()

	categoryID := api.category.ID.String()
	require.NoError(t, recipes.Open(ctx, categoryID))
	assert.Empty(t, recipes.Snapshot().Recipes)

	created, err := recipes.Create(ctx, RecipeInput{
		Name:        "Margherita",
		Description: "Tomato and mozzarella",
		Price:       12.5,
		Ingredients: []domain.IngredientRequest{{Name: "Tomato", Quantity: "2"}},
		Image:       &File{Name: "m.png", Data: []byte("png")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Margherita", created.Name)
	require.Len(t, created.Ingredients, 1)

	_, form, _, _ := api.last()
	assert.Equal(t, []string{"12.5"}, form["price"])
	assert.Equal(t, []string{categoryID}, form["categoryId"])
	assert.Equal(t, []string{`[{"name":"Tomato","quantity":"2"}]`}, form["ingredients"])

	require.NoError(t, recipes.Fetch(ctx))
	require.Len(t, recipes.Snapshot().Recipes, 1)

	require.NoError(t, recipes.Delete(ctx, created.ID.String()))
	_, _, _, body := api.last()
	assert.Equal(t, categoryID, body["categoryId"])
	assert.Empty(t, recipes.Snapshot().Recipes)
}
