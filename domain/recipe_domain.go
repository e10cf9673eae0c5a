package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessCreateRecipe = "recipe added successfully"
	MessageSuccessUpdateRecipe = "recipe updated"
	MessageSuccessDeleteRecipe = "recipe deleted"

	MessageFailedCreateRecipe = "failed to create recipe"
	MessageFailedUpdateRecipe = "failed to update recipe"
	MessageFailedDeleteRecipe = "failed to delete recipe"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrInvalidPrice       = errors.New("price must be a positive number")
	ErrInvalidIngredients = errors.New("ingredients must be a JSON list of {name, quantity}")
	ErrNoIngredients      = errors.New("at least one ingredient is required")
)

type (
	IngredientRequest struct {
		Name     string `json:"name" validate:"required"`
		Quantity string `json:"quantity" validate:"required"`
	}

	CreateRecipeRequest struct {
		Name        string                `validate:"required,max=100"`
		Description string                `validate:"required,max=500"`
		Price       float64               `validate:"gt=0"`
		Ingredients []IngredientRequest   `validate:"min=1,dive"`
		CategoryID  string                `validate:"required,uuid"`
		Image       *multipart.FileHeader `validate:"required"`
	}

	UpdateRecipeRequest struct {
		Name        *string               `validate:"omitempty,min=1,max=100"`
		Description *string               `validate:"omitempty,min=1,max=500"`
		Price       *float64              `validate:"omitempty,gt=0"`
		Ingredients []IngredientRequest   `validate:"omitempty,min=1,dive"`
		Image       *multipart.FileHeader `validate:"-"`
	}

	DeleteRecipeRequest struct {
		CategoryID string `json:"categoryId" form:"categoryId" validate:"omitempty,uuid"`
	}
)
