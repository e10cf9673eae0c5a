package recipe

import (
	"FoodHub/domain"
	"FoodHub/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, categoryID uuid.UUID) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id string) (*entities.Recipe, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateRecipe stores the recipe and appends it to the category's list.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, categoryID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		return tx.Exec(
			"INSERT INTO category_recipes (category_id, recipe_id) VALUES (?, ?)",
			categoryID, recipe.ID,
		).Error
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrRecipeNotFound
	}

	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", parsed).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

// DeleteRecipe removes the recipe from every category list, then deletes it.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) (*entities.Recipe, error) {
	recipe, err := r.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM category_recipes WHERE recipe_id = ?", recipe.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Recipe{}, "id = ?", recipe.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}
