package category

import (
	"FoodHub/domain"
	"FoodHub/entities"
	"FoodHub/internal/utils/storage"
	"context"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	CategoryService interface {
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (*entities.Category, error)
		UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) (*entities.Category, error)
		DeleteCategory(ctx context.Context, id string) error
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		SearchCategories(ctx context.Context, req domain.SearchCategoryRequest) ([]*entities.Category, error)
		GetCategory(ctx context.Context, id string) (*entities.Category, error)
	}

	categoryService struct {
		categoryRepository CategoryRepository
		s3                 storage.AwsS3
	}
)

const imageFolder = "categories"

func NewCategoryService(categoryRepository CategoryRepository, s3 storage.AwsS3) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		s3:                 s3,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (*entities.Category, error) {
	if req.Image == nil {
		return nil, domain.ErrImageRequired
	}

	objectKey, err := s.s3.UploadFile(uuid.NewString(), req.Image, imageFolder, storage.AllowImage...)
	if err != nil {
		return nil, err
	}

	category := &entities.Category{
		Name:     strings.TrimSpace(req.Name),
		Image:    s.s3.GetPublicLinkKey(objectKey),
		Cuisines: normalize(req.Cuisines),
	}
	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) (*entities.Category, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = strings.TrimSpace(*req.Name)
	}
	if req.Cuisines != nil {
		category.Cuisines = req.Cuisines.Normalize()
	}
	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(uuid.NewString(), req.Image, imageFolder, storage.AllowImage...)
		if err != nil {
			return nil, err
		}
		s.deleteImage(category.Image)
		category.Image = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.categoryRepository.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.categoryRepository.DeleteCategory(ctx, id)
	if err != nil {
		return err
	}
	s.deleteImage(category.Image)
	return nil
}

func (s *categoryService) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	return s.categoryRepository.GetCategories(ctx)
}

func (s *categoryService) SearchCategories(ctx context.Context, req domain.SearchCategoryRequest) ([]*entities.Category, error) {
	selected := make([]string, 0, len(req.SelectedCuisines))
	for _, c := range req.SelectedCuisines {
		if c != "" {
			selected = append(selected, c)
		}
	}
	return s.categoryRepository.SearchCategories(ctx, strings.TrimSpace(req.SearchText), selected)
}

func (s *categoryService) GetCategory(ctx context.Context, id string) (*entities.Category, error) {
	return s.categoryRepository.GetCategoryWithRecipes(ctx, id)
}

// deleteImage is best effort; a dangling object never fails the request.
func (s *categoryService) deleteImage(link string) {
	objectKey := s.s3.GetObjectKeyFromLink(link)
	if objectKey == "" {
		return
	}
	if err := s.s3.DeleteFile(objectKey); err != nil {
		log.Warnf("failed to delete image %s: %v", objectKey, err)
	}
}

func normalize(c domain.Cuisines) []string {
	if c == nil {
		return []string{}
	}
	return c.Normalize()
}
