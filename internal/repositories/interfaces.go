package repositories

import (
	"context"

	"github.com/bogadeji/trivia/internal/models"
)

// CategoryRepository interface for category read operations
type CategoryRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	List(ctx context.Context) ([]*models.Category, error)
	Count(ctx context.Context) (int64, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// QuestionRepository interface for question operations
type QuestionRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, question *models.Question) error
	GetByID(ctx context.Context, id uint) (*models.Question, error)
	Delete(ctx context.Context, id uint) error

	// Query operations
	List(ctx context.Context) ([]*models.Question, error)
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, term string) ([]*models.Question, error)
	GetByCategory(ctx context.Context, categoryID uint) ([]*models.Question, error)

	// PickRandom selects one question uniformly at random from the pool,
	// optionally scoped to a category and excluding the given ids. When the
	// pool is exhausted the wrapped error matches gorm.ErrRecordNotFound.
	PickRandom(ctx context.Context, categoryID *uint, excludeIDs []uint) (*models.Question, error)
}

// Repository aggregates all repositories behind a single handle.
type Repository interface {
	Category() CategoryRepository
	Question() QuestionRepository
}
