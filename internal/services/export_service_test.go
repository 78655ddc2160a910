package services

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/bogadeji/trivia/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportFixture() []*models.Question {
	return []*models.Question{
		{ID: 1, Question: "Q one?", Answer: "A1", Difficulty: 1, CategoryID: 1},
		{ID: 2, Question: "Q two, with a comma?", Answer: "A2", Difficulty: 3, CategoryID: 2},
	}
}

func TestExportQuestionsToCSV(t *testing.T) {
	repo := newMockRepository()
	repo.question.On("List", mock.Anything).Return(exportFixture(), nil)

	svc := NewExportService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	data, err := svc.ExportQuestionsToCSV(context.Background())
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Equal(t, "id,question,answer,difficulty,category", string(lines[0]))
	assert.Contains(t, string(lines[2]), `"Q two, with a comma?"`)
}

func TestExportQuestionsToExcel(t *testing.T) {
	repo := newMockRepository()
	repo.question.On("List", mock.Anything).Return(exportFixture(), nil)

	svc := NewExportService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	data, err := svc.ExportQuestionsToExcel(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "question", "answer", "difficulty", "category"}, rows[0])
	assert.Equal(t, "Q one?", rows[1][1])
}
