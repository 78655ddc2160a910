package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/bogadeji/trivia/internal/repositories"
	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{"id", "question", "answer", "difficulty", "category"}

// ExportService renders the question bank as a downloadable file for trivia
// administrators.
type ExportService interface {
	ExportQuestionsToExcel(ctx context.Context) ([]byte, error)
	ExportQuestionsToCSV(ctx context.Context) ([]byte, error)
}

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

// ExportQuestionsToExcel writes all questions to a single-sheet workbook.
func (s *exportService) ExportQuestionsToExcel(ctx context.Context) ([]byte, error) {
	questions, err := s.repo.Question().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}

	for i, question := range questions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute export cell: %w", err)
		}
		row := []interface{}{
			question.ID,
			question.Question,
			question.Answer,
			question.Difficulty,
			question.CategoryID,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write export row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render export workbook: %w", err)
	}

	s.logger.Info("exported questions to xlsx", "count", len(questions))
	return buf.Bytes(), nil
}

// ExportQuestionsToCSV writes all questions as CSV with a header row.
func (s *exportService) ExportQuestionsToCSV(ctx context.Context) ([]byte, error) {
	questions, err := s.repo.Question().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions for export: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}
	for _, question := range questions {
		record := []string{
			strconv.FormatUint(uint64(question.ID), 10),
			question.Question,
			question.Answer,
			strconv.Itoa(question.Difficulty),
			strconv.FormatUint(uint64(question.CategoryID), 10),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write export row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to render export csv: %w", err)
	}

	s.logger.Info("exported questions to csv", "count", len(questions))
	return buf.Bytes(), nil
}
