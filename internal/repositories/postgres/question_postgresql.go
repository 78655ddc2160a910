package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/bogadeji/trivia/internal/models"
	"github.com/bogadeji/trivia/internal/repositories"
	"gorm.io/gorm"
)

type QuestionPostgreSQL struct {
	db *gorm.DB
}

func NewQuestionPostgreSQL(db *gorm.DB) repositories.QuestionRepository {
	return &QuestionPostgreSQL{db: db}
}

// ===== BASIC OPERATIONS =====

// Create inserts a new question and fills in its assigned id
func (q *QuestionPostgreSQL) Create(ctx context.Context, question *models.Question) error {
	if err := q.db.WithContext(ctx).Create(question).Error; err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// GetByID retrieves a question by ID
func (q *QuestionPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	if err := q.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get question %d: %w", id, err)
	}
	return &question, nil
}

// Delete permanently removes a question
func (q *QuestionPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := q.db.WithContext(ctx).Delete(&models.Question{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("question %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// ===== QUERY OPERATIONS =====

// List retrieves all questions ordered by id
func (q *QuestionPostgreSQL) List(ctx context.Context) ([]*models.Question, error) {
	var questions []*models.Question
	if err := q.db.WithContext(ctx).
		Order("id ASC").
		Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

// Count returns the total number of questions
func (q *QuestionPostgreSQL) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := q.db.WithContext(ctx).
		Model(&models.Question{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

// Search performs a case-insensitive substring match against the question text,
// ordered by id. LOWER/LIKE instead of ILIKE so the query is portable across
// the Postgres and sqlite dialects.
func (q *QuestionPostgreSQL) Search(ctx context.Context, term string) ([]*models.Question, error) {
	var questions []*models.Question
	pattern := "%" + strings.ToLower(term) + "%"
	if err := q.db.WithContext(ctx).
		Where("LOWER(question) LIKE ?", pattern).
		Order("id ASC").
		Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return questions, nil
}

// GetByCategory retrieves all questions in a category ordered by id
func (q *QuestionPostgreSQL) GetByCategory(ctx context.Context, categoryID uint) ([]*models.Question, error) {
	var questions []*models.Question
	if err := q.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to get questions for category %d: %w", categoryID, err)
	}
	return questions, nil
}

// PickRandom selects one eligible question at random
func (q *QuestionPostgreSQL) PickRandom(ctx context.Context, categoryID *uint, excludeIDs []uint) (*models.Question, error) {
	query := q.db.WithContext(ctx).Model(&models.Question{})
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var question models.Question
	if err := query.Order("RANDOM()").First(&question).Error; err != nil {
		return nil, fmt.Errorf("failed to pick random question: %w", err)
	}
	return &question, nil
}
