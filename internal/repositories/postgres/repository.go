package postgres

import (
	"github.com/bogadeji/trivia/internal/repositories"
	"gorm.io/gorm"
)

type repository struct {
	category repositories.CategoryRepository
	question repositories.QuestionRepository
}

// NewRepository creates the repository aggregate over a single database handle.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &repository{
		category: NewCategoryPostgreSQL(db),
		question: NewQuestionPostgreSQL(db),
	}
}

func (r *repository) Category() repositories.CategoryRepository {
	return r.category
}

func (r *repository) Question() repositories.QuestionRepository {
	return r.question
}
