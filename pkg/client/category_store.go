package client

import (
	"FoodHub/entities"
	"context"
	"net/http"
	"net/url"
	"strings"
)

type CategoryState struct {
	Categories    []*entities.Category `json:"categories"`
	SearchResults []*entities.Category `json:"searchResults"`
	Current       *entities.Category   `json:"current"`
}

// CategoryInput is a create or update. On update nil Name and Cuisines
// leave the stored values alone.
type CategoryInput struct {
	Name     *string
	Cuisines []string
	Image    *File
}

type CategoryStore struct {
	store[CategoryState]
	client *Client
}

func NewCategoryStore(client *Client, persist Persister, notifier Notifier) *CategoryStore {
	s := &CategoryStore{client: client}
	s.setup("categories", persist, notifier)
	return s
}

func (s *CategoryStore) Sync(ctx context.Context) error {
	if err := s.restore(); err != nil {
		return err
	}
	return s.Fetch(ctx)
}

func (s *CategoryStore) Fetch(ctx context.Context) error {
	var out struct {
		Categories []*entities.Category `json:"categories"`
	}
	if _, err := s.client.doJSON(ctx, http.MethodGet, "/api/v1/category", nil, &out); err != nil {
		return s.fail(err)
	}
	return s.update(func(st *CategoryState) {
		st.Categories = out.Categories
	})
}

// Get loads one category with its recipes and makes it Current.
func (s *CategoryStore) Get(ctx context.Context, id string) (*entities.Category, error) {
	var out struct {
		Category *entities.Category `json:"category"`
	}
	if _, err := s.client.doJSON(ctx, http.MethodGet, "/api/v1/category/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, s.fail(err)
	}
	if err := s.update(func(st *CategoryState) { st.Current = out.Category }); err != nil {
		return nil, err
	}
	return out.Category, nil
}

func (s *CategoryStore) Search(ctx context.Context, text string, cuisines []string) ([]*entities.Category, error) {
	q := url.Values{}
	if text != "" {
		q.Set("searchText", text)
	}
	if len(cuisines) > 0 {
		q.Set("selectedCuisines", strings.Join(cuisines, ","))
	}
	path := "/api/v1/category/search"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out struct {
		Categories []*entities.Category `json:"categories"`
	}
	if _, err := s.client.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, s.fail(err)
	}
	if err := s.update(func(st *CategoryState) { st.SearchResults = out.Categories }); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// Create adds a category and refetches the list, since the server only
// answers with a message.
func (s *CategoryStore) Create(ctx context.Context, in CategoryInput) error {
	msg, err := s.client.doMultipart(ctx, http.MethodPost, "/api/v1/category", in.fields(), in.Image, nil)
	if err != nil {
		return s.fail(err)
	}
	s.ok(msg)
	return s.Fetch(ctx)
}

func (s *CategoryStore) Update(ctx context.Context, id string, in CategoryInput) (*entities.Category, error) {
	var out struct {
		Category *entities.Category `json:"category"`
	}
	msg, err := s.client.doMultipart(ctx, http.MethodPut, "/api/v1/category/"+url.PathEscape(id), in.fields(), in.Image, &out)
	if err != nil {
		return nil, s.fail(err)
	}
	s.ok(msg)

	err = s.update(func(st *CategoryState) {
		st.Categories = replaceByID(st.Categories, out.Category)
		if st.Current != nil && st.Current.ID == out.Category.ID {
			st.Current = out.Category
		}
	})
	return out.Category, err
}

func (s *CategoryStore) Delete(ctx context.Context, id string) error {
	msg, err := s.client.doJSON(ctx, http.MethodDelete, "/api/v1/category/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return s.fail(err)
	}
	s.ok(msg)
	return s.update(func(st *CategoryState) {
		st.Categories = removeWhere(st.Categories, func(c *entities.Category) bool { return c.ID.String() == id })
		st.SearchResults = removeWhere(st.SearchResults, func(c *entities.Category) bool { return c.ID.String() == id })
		if st.Current != nil && st.Current.ID.String() == id {
			st.Current = nil
		}
	})
}

// fields sends cuisines as repeated values so the server takes the list
// as given.
func (in CategoryInput) fields() map[string][]string {
	fields := map[string][]string{}
	if in.Name != nil {
		fields["name"] = []string{*in.Name}
	}
	if in.Cuisines != nil {
		fields["cuisines[]"] = in.Cuisines
	}
	return fields
}

func replaceByID(list []*entities.Category, c *entities.Category) []*entities.Category {
	out := make([]*entities.Category, 0, len(list))
	for _, existing := range list {
		if existing.ID == c.ID {
			out = append(out, c)
			continue
		}
		out = append(out, existing)
	}
	return out
}

func removeWhere[T any](list []T, match func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if !match(v) {
			out = append(out, v)
		}
	}
	return out
}
