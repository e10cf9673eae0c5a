package category

import (
	"FoodHub/domain"
	"FoodHub/entities"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	CategoryRepository interface {
		CreateCategory(ctx context.Context, category *entities.Category) error
		GetCategoryByID(ctx context.Context, id string) (*entities.Category, error)
		GetCategoryWithRecipes(ctx context.Context, id string) (*entities.Category, error)
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		SearchCategories(ctx context.Context, searchText string, selectedCuisines []string) ([]*entities.Category, error)
		UpdateCategory(ctx context.Context, category *entities.Category) error
		DeleteCategory(ctx context.Context, id string) (*entities.Category, error)
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(category).Error
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	return r.find(ctx, r.db.WithContext(ctx), id)
}

// GetCategoryWithRecipes populates the recipe list newest first.
func (r *categoryRepository) GetCategoryWithRecipes(ctx context.Context, id string) (*entities.Category, error) {
	return r.find(ctx, r.db.WithContext(ctx).Preload("Recipes", func(db *gorm.DB) *gorm.DB {
		return db.Order("recipes.created_at DESC")
	}), id)
}

func (r *categoryRepository) find(_ context.Context, q *gorm.DB, id string) (*entities.Category, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}

	var category entities.Category
	if err := q.Where("id = ?", parsed).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// SearchCategories matches searchText case-insensitively as a substring of
// the name or of any single cuisine, and requires at least one cuisine equal
// to an entry of selectedCuisines. Both filters are optional and combine with
// AND. Cuisines are stored as one JSON column, so matching happens per
// element after loading rather than in SQL.
func (r *categoryRepository) SearchCategories(ctx context.Context, searchText string, selectedCuisines []string) ([]*entities.Category, error) {
	categories, err := r.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(searchText)
	matched := make([]*entities.Category, 0, len(categories))
	for _, c := range categories {
		if needle != "" && !matchesText(c, needle) {
			continue
		}
		if len(selectedCuisines) > 0 && !hasAnyCuisine(c, selectedCuisines) {
			continue
		}
		matched = append(matched, c)
	}
	return matched, nil
}

func matchesText(c *entities.Category, needle string) bool {
	if strings.Contains(strings.ToLower(c.Name), needle) {
		return true
	}
	for _, cuisine := range c.Cuisines {
		if strings.Contains(strings.ToLower(cuisine), needle) {
			return true
		}
	}
	return false
}

func hasAnyCuisine(c *entities.Category, selected []string) bool {
	for _, cuisine := range c.Cuisines {
		for _, want := range selected {
			if cuisine == want {
				return true
			}
		}
	}
	return false
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(category).Error
}

// DeleteCategory drops the category and its recipe references. The recipes
// themselves stay.
func (r *categoryRepository) DeleteCategory(ctx context.Context, id string) (*entities.Category, error) {
	category, err := r.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM category_recipes WHERE category_id = ?", category.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Category{}, "id = ?", category.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}
