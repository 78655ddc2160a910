package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/bogadeji/trivia/internal/events"
	"github.com/bogadeji/trivia/internal/models"
	"github.com/bogadeji/trivia/internal/repositories"
	"github.com/bogadeji/trivia/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockQuestionRepository is a mock implementation of QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, question *models.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	args := m.Called(ctx, id)
	if q := args.Get(0); q != nil {
		return q.(*models.Question), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuestionRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuestionRepository) List(ctx context.Context) ([]*models.Question, error) {
	args := m.Called(ctx)
	if q := args.Get(0); q != nil {
		return q.([]*models.Question), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuestionRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionRepository) Search(ctx context.Context, term string) ([]*models.Question, error) {
	args := m.Called(ctx, term)
	if q := args.Get(0); q != nil {
		return q.([]*models.Question), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuestionRepository) GetByCategory(ctx context.Context, categoryID uint) ([]*models.Question, error) {
	args := m.Called(ctx, categoryID)
	if q := args.Get(0); q != nil {
		return q.([]*models.Question), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuestionRepository) PickRandom(ctx context.Context, categoryID *uint, excludeIDs []uint) (*models.Question, error) {
	args := m.Called(ctx, categoryID, excludeIDs)
	if q := args.Get(0); q != nil {
		return q.(*models.Question), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRepository struct {
	category *MockCategoryRepository
	question *MockQuestionRepository
}

func (r *mockRepository) Category() repositories.CategoryRepository { return r.category }
func (r *mockRepository) Question() repositories.QuestionRepository { return r.question }

func newMockRepository() *mockRepository {
	return &mockRepository{
		category: new(MockCategoryRepository),
		question: new(MockQuestionRepository),
	}
}

func newTestService(repo *mockRepository) (QuestionService, *events.MockEventPublisher) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := events.NewMockEventPublisher(logger)
	return NewQuestionService(repo, logger, validator.New(), publisher), publisher
}

func seedQuestions(n int, categoryID uint) []*models.Question {
	questions := make([]*models.Question, n)
	for i := range questions {
		questions[i] = &models.Question{
			ID:         uint(i + 1),
			Question:   "question",
			Answer:     "answer",
			Difficulty: 1,
			CategoryID: categoryID,
		}
	}
	return questions
}

func intPtr(v int) *int { return &v }

func catPtr(v uint) *CategoryRef {
	r := CategoryRef(v)
	return &r
}

func prevPtr(vals ...uint) *[]uint {
	// a non-nil slice, matching what binding a JSON [] produces
	ids := append([]uint{}, vals...)
	return &ids
}

func quizCat(v uint) *QuizCategoryRef { return &QuizCategoryRef{ID: CategoryRef(v)} }

// ===== LISTING =====

func TestListQuestionsEmptyStoreIsNotFound(t *testing.T) {
	repo := newMockRepository()
	repo.question.On("List", mock.Anything).Return([]*models.Question{}, nil)
	svc, _ := newTestService(repo)

	_, err := svc.List(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestListQuestionsPageBeyondEndIsNotFound(t *testing.T) {
	repo := newMockRepository()
	repo.question.On("List", mock.Anything).Return(seedQuestions(12, 1), nil)
	svc, _ := newTestService(repo)

	_, err := svc.List(context.Background(), 3)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestListQuestionsPagination(t *testing.T) {
	repo := newMockRepository()
	repo.question.On("List", mock.Anything).Return(seedQuestions(12, 1), nil)
	repo.category.On("List", mock.Anything).Return([]*models.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	}, nil)
	svc, _ := newTestService(repo)

	page1, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, page1.Questions, 10)
	assert.Equal(t, int64(12), page1.TotalQuestions)
	assert.Equal(t, map[string]string{"1": "Science", "2": "Art"}, page1.Categories)

	page2, err := svc.List(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, page2.Questions, 2)
	assert.Equal(t, uint(11), page2.Questions[0].ID)
}

// ===== CREATE =====

func TestCreateQuestionMissingFieldFailsValidation(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newTestService(repo)

	reqs := []*CreateQuestionRequest{
		{Answer: "a", Difficulty: intPtr(1), Category: catPtr(1)},
		{Question: "q", Difficulty: intPtr(1), Category: catPtr(1)},
		{Question: "q", Answer: "a", Category: catPtr(1)},
		{Question: "q", Answer: "a", Difficulty: intPtr(1)},
	}
	for _, req := range reqs {
		_, err := svc.Create(context.Background(), req)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	}
	repo.question.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateQuestionUnknownCategoryFailsValidation(t *testing.T) {
	repo := newMockRepository()
	repo.category.On("Exists", mock.Anything, uint(99)).Return(false, nil)
	svc, _ := newTestService(repo)

	_, err := svc.Create(context.Background(), &CreateQuestionRequest{
		Question:   "q",
		Answer:     "a",
		Difficulty: intPtr(2),
		Category:   catPtr(99),
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	repo.question.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateQuestionPublishesEvent(t *testing.T) {
	repo := newMockRepository()
	repo.category.On("Exists", mock.Anything, uint(1)).Return(true, nil)
	repo.question.On("Create", mock.Anything, mock.AnythingOfType("*models.Question")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Question).ID = 42
		}).
		Return(nil)
	repo.question.On("Count", mock.Anything).Return(int64(13), nil)
	svc, publisher := newTestService(repo)

	result, err := svc.Create(context.Background(), &CreateQuestionRequest{
		Question:   "q",
		Answer:     "a",
		Difficulty: intPtr(2),
		Category:   catPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), result.Created)
	assert.Equal(t, int64(13), result.TotalQuestions)

	require.Len(t, publisher.Events, 1)
	assert.Equal(t, events.EventQuestionCreated, publisher.Events[0].Type)
}

// ===== DELETE =====

func TestDeleteMissingQuestion(t *testing.T) {
	repo := newMockRepository()
	repo.question.On("GetByID", mock.Anything, uint(999)).Return(nil, gorm.ErrRecordNotFound)
	svc, _ := newTestService(repo)

	_, err := svc.Delete(context.Background(), 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestDeleteQuestionPublishesEvent(t *testing.T) {
	repo := newMockRepository()
	repo.question.On("GetByID", mock.Anything, uint(5)).Return(&models.Question{ID: 5, CategoryID: 1}, nil)
	repo.question.On("Delete", mock.Anything, uint(5)).Return(nil)
	svc, publisher := newTestService(repo)

	deleted, err := svc.Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, uint(5), deleted)

	require.Len(t, publisher.Events, 1)
	assert.Equal(t, events.EventQuestionDeleted, publisher.Events[0].Type)
}

// ===== SEARCH =====

func TestSearchEmptyTermFailsValidation(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newTestService(repo)

	for _, term := range []string{"", "   "} {
		_, err := svc.Search(context.Background(), term, 1)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	}
}

func TestSearchNoMatchesIsNotFound(t *testing.T) {
	repo := newMockRepository()
	repo.question.On("Search", mock.Anything, "zzz").Return([]*models.Question{}, nil)
	svc, _ := newTestService(repo)

	_, err := svc.Search(context.Background(), "zzz", 1)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestSearchTotalIndependentOfPagination(t *testing.T) {
	repo := newMockRepository()
	repo.question.On("Search", mock.Anything, "title").Return(seedQuestions(11, 1), nil)
	repo.question.On("Count", mock.Anything).Return(int64(30), nil)
	svc, _ := newTestService(repo)

	result, err := svc.Search(context.Background(), "title", 2)
	require.NoError(t, err)
	assert.Len(t, result.Questions, 1)
	assert.Equal(t, int64(11), result.TotalSearchQuestions)
	assert.Equal(t, int64(30), result.TotalQuestions)
}

// ===== CATEGORY LISTING =====

func TestListByCategoryUnknownCategory(t *testing.T) {
	repo := newMockRepository()
	repo.category.On("GetByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
	svc, _ := newTestService(repo)

	_, err := svc.ListByCategory(context.Background(), 99, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestListByCategoryEmptyIsSuccess(t *testing.T) {
	repo := newMockRepository()
	repo.category.On("GetByID", mock.Anything, uint(2)).Return(&models.Category{ID: 2, Type: "Art"}, nil)
	repo.question.On("GetByCategory", mock.Anything, uint(2)).Return([]*models.Question{}, nil)
	repo.question.On("Count", mock.Anything).Return(int64(12), nil)
	svc, _ := newTestService(repo)

	result, err := svc.ListByCategory(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.Empty(t, result.Questions)
	assert.Equal(t, int64(0), result.TotalCategoryQuestions)
	assert.Equal(t, int64(12), result.TotalQuestions)
}

// ===== QUIZ SELECTION =====

func TestNextQuizQuestionMissingFieldsFailValidation(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newTestService(repo)

	_, err := svc.NextQuizQuestion(context.Background(), &QuizRequest{QuizCategory: quizCat(0)})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = svc.NextQuizQuestion(context.Background(), &QuizRequest{PreviousQuestions: prevPtr()})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestNextQuizQuestionEmptyHistoryIsValid(t *testing.T) {
	repo := newMockRepository()
	repo.question.On("PickRandom", mock.Anything, (*uint)(nil), []uint{}).
		Return(&models.Question{ID: 5, CategoryID: 2}, nil)
	svc, _ := newTestService(repo)

	result, err := svc.NextQuizQuestion(context.Background(), &QuizRequest{
		QuizCategory:      quizCat(0),
		PreviousQuestions: prevPtr(),
	})
	require.NoError(t, err)
	require.NotNil(t, result.Question)
	assert.Equal(t, uint(5), result.Question.ID)
}

func TestNextQuizQuestionCategoryScoped(t *testing.T) {
	repo := newMockRepository()
	repo.category.On("Exists", mock.Anything, uint(1)).Return(true, nil)
	repo.question.On("PickRandom", mock.Anything, mock.MatchedBy(func(id *uint) bool {
		return id != nil && *id == 1
	}), []uint{3, 4}).Return(&models.Question{ID: 7, CategoryID: 1}, nil)
	svc, _ := newTestService(repo)

	result, err := svc.NextQuizQuestion(context.Background(), &QuizRequest{
		QuizCategory:      quizCat(1),
		PreviousQuestions: prevPtr(3, 4),
	})
	require.NoError(t, err)
	require.NotNil(t, result.Question)
	assert.Equal(t, uint(1), result.Question.CategoryID)
	assert.Equal(t, uint(1), result.Category)
}

func TestNextQuizQuestionUnknownCategory(t *testing.T) {
	repo := newMockRepository()
	repo.category.On("Exists", mock.Anything, uint(42)).Return(false, nil)
	svc, _ := newTestService(repo)

	_, err := svc.NextQuizQuestion(context.Background(), &QuizRequest{
		QuizCategory:      quizCat(42),
		PreviousQuestions: prevPtr(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestNextQuizQuestionExhaustedPool(t *testing.T) {
	repo := newMockRepository()
	repo.question.On("PickRandom", mock.Anything, (*uint)(nil), []uint{1, 2, 3}).
		Return(nil, gorm.ErrRecordNotFound)
	svc, _ := newTestService(repo)

	result, err := svc.NextQuizQuestion(context.Background(), &QuizRequest{
		QuizCategory:      quizCat(0),
		PreviousQuestions: prevPtr(1, 2, 3),
	})
	require.NoError(t, err)
	assert.Nil(t, result.Question)
}
