package handlers

import (
	"FoodHub/domain"
	"FoodHub/internal/api/presenters"
	"FoodHub/pkg/category"
	"encoding/json"
	"mime/multipart"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CategoryHandler interface {
		CreateCategory(c *fiber.Ctx) error
		UpdateCategory(c *fiber.Ctx) error
		DeleteCategory(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		SearchCategories(c *fiber.Ctx) error
		GetCategory(c *fiber.Ctx) error
	}

	categoryHandler struct {
		categoryService category.CategoryService
		validator       *validator.Validate
	}

	// categoryBody is the JSON form of a create or update; cuisines may be a
	// comma-joined string or a list.
	categoryBody struct {
		Name     *string                `json:"name"`
		Cuisines *domain.CuisinesField `json:"cuisines"`
	}
)

func NewCategoryHandler(categoryService category.CategoryService, validator *validator.Validate) CategoryHandler {
	return &categoryHandler{
		categoryService: categoryService,
		validator:       validator,
	}
}

// parseCategoryInput reads name, cuisines and image from either a multipart
// form or a JSON body. Absent fields come back nil.
func parseCategoryInput(c *fiber.Ctx) (*string, domain.Cuisines, *multipart.FileHeader, error) {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		var body categoryBody
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			return nil, nil, nil, err
		}
		var cuisines domain.Cuisines
		if body.Cuisines != nil {
			cuisines = body.Cuisines.Value
		}
		return body.Name, cuisines, nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, nil, err
	}

	var name *string
	if values, ok := form.Value["name"]; ok && len(values) > 0 {
		v := values[0]
		name = &v
	}

	values := append([]string{}, form.Value["cuisines"]...)
	values = append(values, form.Value["cuisines[]"]...)
	cuisines := domain.CuisinesFromForm(values)

	var image *multipart.FileHeader
	if files := form.File["image"]; len(files) > 0 {
		image = files[0]
	}
	return name, cuisines, image, nil
}

func (h *categoryHandler) CreateCategory(c *fiber.Ctx) error {
	name, cuisines, image, err := parseCategoryInput(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if image == nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrImageRequired.Error(), domain.ErrImageRequired)
	}

	req := domain.CreateCategoryRequest{Cuisines: cuisines, Image: image}
	if name != nil {
		req.Name = *name
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	if _, err := h.categoryService.CreateCategory(c.Context(), req); err != nil {
		return fail(c, domain.MessageFailedCreateCategory, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessCreateCategory)
}

func (h *categoryHandler) UpdateCategory(c *fiber.Ctx) error {
	name, cuisines, image, err := parseCategoryInput(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req := domain.UpdateCategoryRequest{Name: name, Cuisines: cuisines, Image: image}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCategory, err)
	}

	updated, err := h.categoryService.UpdateCategory(c.Context(), c.Params("id"), req)
	if err != nil {
		return fail(c, domain.MessageFailedUpdateCategory, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"category": updated}, fiber.StatusOK, domain.MessageSuccessUpdateCategory)
}

func (h *categoryHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.categoryService.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return fail(c, domain.MessageFailedDeleteCategory, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCategory)
}

func (h *categoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.categoryService.GetCategories(c.Context())
	if err != nil {
		return fail(c, domain.MessageFailedGetCategories, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"categories": categories}, fiber.StatusOK, "")
}

func (h *categoryHandler) SearchCategories(c *fiber.Ctx) error {
	req := domain.SearchCategoryRequest{SearchText: c.Query("searchText")}
	if selected := c.Query("selectedCuisines"); selected != "" {
		req.SelectedCuisines = strings.Split(selected, ",")
	}

	categories, err := h.categoryService.SearchCategories(c.Context(), req)
	if err != nil {
		return fail(c, domain.MessageFailedGetCategories, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"categories": categories}, fiber.StatusOK, "")
}

func (h *categoryHandler) GetCategory(c *fiber.Ctx) error {
	found, err := h.categoryService.GetCategory(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, domain.MessageFailedGetCategory, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"category": found}, fiber.StatusOK, "")
}
