package domain

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"strings"
)

var (
	MessageSuccessCreateCategory = "category added"
	MessageSuccessUpdateCategory = "category updated"
	MessageSuccessDeleteCategory = "category deleted"

	MessageFailedCreateCategory = "failed to create category"
	MessageFailedUpdateCategory = "failed to update category"
	MessageFailedDeleteCategory = "failed to delete category"
	MessageFailedGetCategories  = "failed to get categories"
	MessageFailedGetCategory    = "failed to get category"

	ErrCategoryNotFound = errors.New("category not found")
)

// Cuisines is the wire form of a category's cuisine tags. It is either a
// DelimitedCuisines (one comma-joined string) or a CuisineList.
type Cuisines interface {
	Normalize() []string
	cuisines()
}

type DelimitedCuisines string

type CuisineList []string

// Normalize splits on commas, trims, and drops empty entries.
func (d DelimitedCuisines) Normalize() []string {
	parts := strings.Split(string(d), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Normalize returns the list unchanged.
func (l CuisineList) Normalize() []string {
	out := make([]string, len(l))
	copy(out, l)
	return out
}

func (DelimitedCuisines) cuisines() {}
func (CuisineList) cuisines()       {}

// CuisinesFromForm builds the sum type from multipart values: one value is a
// delimited string, several values are a list. No values yields nil.
func CuisinesFromForm(values []string) Cuisines {
	switch len(values) {
	case 0:
		return nil
	case 1:
		return DelimitedCuisines(values[0])
	default:
		return CuisineList(values)
	}
}

// CuisinesField decodes a JSON string or a JSON array of strings.
type CuisinesField struct {
	Value Cuisines
}

func (f *CuisinesField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Value = DelimitedCuisines(s)
		return nil
	}
	var l []string
	if err := json.Unmarshal(data, &l); err != nil {
		return errors.New("cuisines must be a string or a list of strings")
	}
	f.Value = CuisineList(l)
	return nil
}

type (
	CreateCategoryRequest struct {
		Name     string                `validate:"required,max=100"`
		Cuisines Cuisines              `validate:"-"`
		Image    *multipart.FileHeader `validate:"required"`
	}

	UpdateCategoryRequest struct {
		Name     *string               `validate:"omitempty,min=1,max=100"`
		Cuisines Cuisines              `validate:"-"`
		Image    *multipart.FileHeader `validate:"-"`
	}

	SearchCategoryRequest struct {
		SearchText       string
		SelectedCuisines []string
	}
)
