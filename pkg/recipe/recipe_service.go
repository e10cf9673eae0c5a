package recipe

import (
	"FoodHub/domain"
	"FoodHub/entities"
	"FoodHub/internal/utils/storage"
	"FoodHub/pkg/category"
	"context"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) (*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, id string) error
	}

	recipeService struct {
		recipeRepository   RecipeRepository
		categoryRepository category.CategoryRepository
		s3                 storage.AwsS3
	}
)

const imageFolder = "recipes"

func NewRecipeService(
	recipeRepository RecipeRepository,
	categoryRepository category.CategoryRepository,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:   recipeRepository,
		categoryRepository: categoryRepository,
		s3:                 s3,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (*entities.Recipe, error) {
	if req.Price <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	ingredients, err := toIngredients(req.Ingredients)
	if err != nil {
		return nil, err
	}
	if req.Image == nil {
		return nil, domain.ErrImageRequired
	}

	// the category is checked before the upload so a bad id leaves no object behind
	cat, err := s.categoryRepository.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	objectKey, err := s.s3.UploadFile(uuid.NewString(), req.Image, imageFolder, storage.AllowImage...)
	if err != nil {
		return nil, err
	}

	recipe := &entities.Recipe{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		Image:       s.s3.GetPublicLinkKey(objectKey),
		Ingredients: ingredients,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe, cat.ID); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		recipe.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		recipe.Description = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, domain.ErrInvalidPrice
		}
		recipe.Price = *req.Price
	}
	if req.Ingredients != nil {
		ingredients, err := toIngredients(req.Ingredients)
		if err != nil {
			return nil, err
		}
		recipe.Ingredients = ingredients
	}
	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(uuid.NewString(), req.Image, imageFolder, storage.AllowImage...)
		if err != nil {
			return nil, err
		}
		s.deleteImage(recipe.Image)
		recipe.Image = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	recipe, err := s.recipeRepository.DeleteRecipe(ctx, id)
	if err != nil {
		return err
	}
	s.deleteImage(recipe.Image)
	return nil
}

func (s *recipeService) deleteImage(link string) {
	objectKey := s.s3.GetObjectKeyFromLink(link)
	if objectKey == "" {
		return
	}
	if err := s.s3.DeleteFile(objectKey); err != nil {
		log.Warnf("failed to delete image %s: %v", objectKey, err)
	}
}

func toIngredients(in []domain.IngredientRequest) ([]entities.Ingredient, error) {
	if len(in) == 0 {
		return nil, domain.ErrNoIngredients
	}
	out := make([]entities.Ingredient, 0, len(in))
	for _, i := range in {
		name, quantity := strings.TrimSpace(i.Name), strings.TrimSpace(i.Quantity)
		if name == "" || quantity == "" {
			return nil, domain.ErrInvalidIngredients
		}
		out = append(out, entities.Ingredient{Name: name, Quantity: quantity})
	}
	return out, nil
}
