package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/bogadeji/trivia/internal/models"
	"github.com/bogadeji/trivia/internal/repositories"
)

// CategoryListResponse is the payload of the category listing operation.
type CategoryListResponse struct {
	Categories      map[string]string
	TotalCategories int64
}

// CategoryService exposes read operations over trivia categories.
type CategoryService interface {
	List(ctx context.Context) (*CategoryListResponse, error)
}

type categoryService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewCategoryService(repo repositories.Repository, logger *slog.Logger) CategoryService {
	return &categoryService{
		repo:   repo,
		logger: logger,
	}
}

// List returns every category as a string(id) -> type mapping plus the total
// count. An empty store yields an empty mapping, never an error.
func (s *categoryService) List(ctx context.Context) (*CategoryListResponse, error) {
	categories, err := s.repo.Category().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &CategoryListResponse{
		Categories:      categoriesAsMap(categories),
		TotalCategories: int64(len(categories)),
	}, nil
}

// categoriesAsMap formats categories the way the web client consumes them.
func categoriesAsMap(categories []*models.Category) map[string]string {
	m := make(map[string]string, len(categories))
	for _, category := range categories {
		m[strconv.FormatUint(uint64(category.ID), 10)] = category.Type
	}
	return m
}
