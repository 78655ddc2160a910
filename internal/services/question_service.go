package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bogadeji/trivia/internal/events"
	"github.com/bogadeji/trivia/internal/models"
	"github.com/bogadeji/trivia/internal/repositories"
	"github.com/bogadeji/trivia/internal/validator"
	"gorm.io/gorm"
)

// ===== RESPONSE STRUCTURES =====

type QuestionListResponse struct {
	Questions      []*models.Question
	TotalQuestions int64
	Categories     map[string]string
}

type CreateQuestionResponse struct {
	Created        uint
	TotalQuestions int64
}

type SearchResponse struct {
	Questions            []*models.Question
	TotalSearchQuestions int64
	TotalQuestions       int64
}

type CategoryQuestionsResponse struct {
	Category               uint
	Questions              []*models.Question
	TotalCategoryQuestions int64
	TotalQuestions         int64
}

// QuizResponse carries the next quiz question. Question is nil when the
// eligible pool is exhausted; that is a normal end-of-game outcome, not an
// error.
type QuizResponse struct {
	Category uint
	Question *models.Question
}

// QuestionService exposes the question read/write operations backing the API.
type QuestionService interface {
	List(ctx context.Context, page int) (*QuestionListResponse, error)
	Create(ctx context.Context, req *CreateQuestionRequest) (*CreateQuestionResponse, error)
	Delete(ctx context.Context, id uint) (uint, error)
	Search(ctx context.Context, term string, page int) (*SearchResponse, error)
	ListByCategory(ctx context.Context, categoryID uint, page int) (*CategoryQuestionsResponse, error)
	NextQuizQuestion(ctx context.Context, req *QuizRequest) (*QuizResponse, error)
}

type questionService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewQuestionService(
	repo repositories.Repository,
	logger *slog.Logger,
	validator *validator.Validator,
	publisher events.EventPublisher,
) QuestionService {
	return &questionService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

// ===== LISTING =====

// List returns one fixed-size page of all questions ordered by id. An empty
// page, whether from an empty store or a page number past the end, reports
// not found; the shipped web client relies on the 404 to stop paging.
func (s *questionService) List(ctx context.Context, page int) (*QuestionListResponse, error) {
	questions, err := s.repo.Question().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	current := Paginate(questions, page, DefaultPageSize)
	if len(current) == 0 {
		return nil, fmt.Errorf("%w: no questions on page %d", ErrNotFound, page)
	}

	categories, err := s.repo.Category().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &QuestionListResponse{
		Questions:      current,
		TotalQuestions: int64(len(questions)),
		Categories:     categoriesAsMap(categories),
	}, nil
}

// ===== CREATE / DELETE =====

// Create validates the request, checks the referenced category exists, and
// inserts the question.
func (s *questionService) Create(ctx context.Context, req *CreateQuestionRequest) (*CreateQuestionResponse, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	categoryID := uint(*req.Category)
	exists, err := s.repo.Category().Exists(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category %d: %w", categoryID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: unknown category %d", ErrValidationFailed, categoryID)
	}

	question := &models.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: *req.Difficulty,
		CategoryID: categoryID,
	}
	if err := s.repo.Question().Create(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	total, err := s.repo.Question().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}

	s.publishEvent(ctx, events.NewQuestionCreatedEvent(question))
	s.logger.Info("question created", "question_id", question.ID, "category_id", categoryID)

	return &CreateQuestionResponse{
		Created:        question.ID,
		TotalQuestions: total,
	}, nil
}

// Delete removes a question by id and returns the deleted id.
func (s *questionService) Delete(ctx context.Context, id uint) (uint, error) {
	question, err := s.repo.Question().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: %d", ErrQuestionNotFound, id)
		}
		return 0, fmt.Errorf("failed to load question %d: %w", id, err)
	}

	if err := s.repo.Question().Delete(ctx, id); err != nil {
		return 0, fmt.Errorf("failed to delete question %d: %w", id, err)
	}

	s.publishEvent(ctx, events.NewQuestionDeletedEvent(question))
	s.logger.Info("question deleted", "question_id", id)

	return id, nil
}

// ===== SEARCH =====

// Search matches the term case-insensitively against the question text and
// returns one page of matches. An empty term fails validation; zero matches
// report not found.
func (s *questionService) Search(ctx context.Context, term string, page int) (*SearchResponse, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("%w: search term is required", ErrValidationFailed)
	}

	matches, err := s.repo.Question().Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no questions match %q", ErrNotFound, term)
	}

	total, err := s.repo.Question().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}

	return &SearchResponse{
		Questions:            Paginate(matches, page, DefaultPageSize),
		TotalSearchQuestions: int64(len(matches)),
		TotalQuestions:       total,
	}, nil
}

// ===== CATEGORY LISTING =====

// ListByCategory returns one page of the questions in a category. An unknown
// category reports not found; a category with no questions is an empty page.
func (s *questionService) ListByCategory(ctx context.Context, categoryID uint, page int) (*CategoryQuestionsResponse, error) {
	if _, err := s.repo.Category().GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrCategoryNotFound, categoryID)
		}
		return nil, fmt.Errorf("failed to load category %d: %w", categoryID, err)
	}

	questions, err := s.repo.Question().GetByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions for category %d: %w", categoryID, err)
	}

	total, err := s.repo.Question().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}

	return &CategoryQuestionsResponse{
		Category:               categoryID,
		Questions:              Paginate(questions, page, DefaultPageSize),
		TotalCategoryQuestions: int64(len(questions)),
		TotalQuestions:         total,
	}, nil
}

// ===== QUIZ SELECTION =====

// NextQuizQuestion picks one question uniformly at random from the eligible
// pool: same category when a non-zero category id is given, excluding every
// previously seen id. An exhausted pool returns a nil question.
func (s *questionService) NextQuizQuestion(ctx context.Context, req *QuizRequest) (*QuizResponse, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	var categoryID *uint
	requested := uint(req.QuizCategory.ID)
	if requested != 0 {
		exists, err := s.repo.Category().Exists(ctx, requested)
		if err != nil {
			return nil, fmt.Errorf("failed to check category %d: %w", requested, err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: %d", ErrCategoryNotFound, requested)
		}
		categoryID = &requested
	}

	question, err := s.repo.Question().PickRandom(ctx, categoryID, *req.PreviousQuestions)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Info("quiz pool exhausted", "category_id", requested, "seen", len(*req.PreviousQuestions))
			return &QuizResponse{Category: requested}, nil
		}
		return nil, fmt.Errorf("failed to pick quiz question: %w", err)
	}

	return &QuizResponse{
		Category: requested,
		Question: question,
	}, nil
}

// publishEvent publishes best-effort; a broker failure never fails the request.
func (s *questionService) publishEvent(ctx context.Context, event *events.QuestionEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishQuestionEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish question event", "event_type", event.Type, "error", err)
	}
}
