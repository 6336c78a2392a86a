package service

import (
	"github.com/lshigami/trivium/internal/repository"
	"github.com/rs/zerolog/log"
)

type CategoryService interface {
	GetCategories() (map[uint]string, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

// GetCategories returns every category as an id-to-label map. An empty
// store yields an empty map, not an error.
func (s *categoryService) GetCategories() (map[uint]string, error) {
	categories, err := s.repo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load categories")
		return nil, err
	}
	result := make(map[uint]string, len(categories))
	for _, category := range categories {
		result[category.ID] = category.Type
	}
	return result, nil
}
