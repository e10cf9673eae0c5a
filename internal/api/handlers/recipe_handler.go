package handlers

import (
	"FoodHub/domain"
	"FoodHub/internal/api/presenters"
	"FoodHub/pkg/recipe"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

// parseIngredients decodes the JSON-encoded ingredient list sent as a form field.
func parseIngredients(raw string) ([]domain.IngredientRequest, error) {
	var ingredients []domain.IngredientRequest
	if err := json.Unmarshal([]byte(raw), &ingredients); err != nil {
		return nil, domain.ErrInvalidIngredients
	}
	return ingredients, nil
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || price <= 0 {
		return 0, domain.ErrInvalidPrice
	}
	return price, nil
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrImageRequired.Error(), domain.ErrImageRequired)
	}

	price, err := parsePrice(c.FormValue("price"))
	if err != nil {
		return fail(c, domain.MessageFailedCreateRecipe, err)
	}
	ingredients, err := parseIngredients(c.FormValue("ingredients"))
	if err != nil {
		return fail(c, domain.MessageFailedCreateRecipe, err)
	}
	if len(ingredients) == 0 {
		return fail(c, domain.MessageFailedCreateRecipe, domain.ErrNoIngredients)
	}

	req := domain.CreateRecipeRequest{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       price,
		Ingredients: ingredients,
		CategoryID:  c.FormValue("categoryId"),
		Image:       image,
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	created, err := h.recipeService.CreateRecipe(c.Context(), req)
	if err != nil {
		return fail(c, domain.MessageFailedCreateRecipe, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"recipe": created}, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

// UpdateRecipe applies only the fields that were sent non-empty.
func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	req := domain.UpdateRecipeRequest{}

	if v := c.FormValue("name"); v != "" {
		req.Name = &v
	}
	if v := c.FormValue("description"); v != "" {
		req.Description = &v
	}
	if v := c.FormValue("price"); v != "" {
		price, err := parsePrice(v)
		if err != nil {
			return fail(c, domain.MessageFailedUpdateRecipe, err)
		}
		req.Price = &price
	}
	if v := c.FormValue("ingredients"); v != "" {
		ingredients, err := parseIngredients(v)
		if err != nil {
			return fail(c, domain.MessageFailedUpdateRecipe, err)
		}
		if len(ingredients) == 0 {
			return fail(c, domain.MessageFailedUpdateRecipe, domain.ErrNoIngredients)
		}
		req.Ingredients = ingredients
	}
	if image, err := c.FormFile("image"); err == nil {
		req.Image = image
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	updated, err := h.recipeService.UpdateRecipe(c.Context(), c.Params("id"), req)
	if err != nil {
		return fail(c, domain.MessageFailedUpdateRecipe, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"recipe": updated}, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

// DeleteRecipe accepts the caller's categoryId for compatibility; the recipe
// is removed from every category that lists it.
func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	req := new(domain.DeleteRecipeRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRecipe, err)
	}

	if err := h.recipeService.DeleteRecipe(c.Context(), c.Params("id")); err != nil {
		return fail(c, domain.MessageFailedDeleteRecipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}
