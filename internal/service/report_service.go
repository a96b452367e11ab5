package service

import (
	"bytes"
	"context"
	"fmt"

	"elearning_backend/internal/repository"

	"github.com/xuri/excelize/v2"
)

// ReportService renders authoring progress reports for download.
type ReportService struct {
	ExamService *ExamService
	ExamRepo    *repository.ExamRepository
}

func NewReportService(examService *ExamService, examRepo *repository.ExamRepository) *ReportService {
	return &ReportService{ExamService: examService, ExamRepo: examRepo}
}

// ExportCompletionExcel writes one row per container plus a summary row,
// so editors can see at a glance which parts still need work.
func (s *ReportService) ExportCompletionExcel(ctx context.Context, examID uint) ([]byte, string, error) {
	detail, err := s.ExamService.GetExamDetail(ctx, examID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"part_order", "part_type", "skill", "total_questions", "questions_with_options", "questions_complete", "completion_rate"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, container := range detail.Exam.Containers {
		row := i + 2
		skill := ""
		if container.Skill != nil {
			skill = string(*container.Skill)
		}

		stats := ContainerStatistics{}
		for _, cs := range detail.ContainerStats {
			if cs.ContainerID == container.ID {
				stats = cs
				break
			}
		}

		values := []any{
			container.Order,
			string(container.Type),
			skill,
			stats.TotalQuestions,
			stats.QuestionsWithOptions,
			stats.QuestionsComplete,
			fmt.Sprintf("%d%%", stats.CompletionRate),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	summaryRow := len(detail.Exam.Containers) + 3
	summary := []any{
		"TOTAL",
		"",
		"",
		detail.Statistics.TotalQuestions,
		"",
		detail.Statistics.QuestionsComplete,
		fmt.Sprintf("%d%%", detail.Statistics.CompletionRate),
	}
	for col, v := range summary {
		cell, _ := excelize.CoordinatesToCellName(col+1, summaryRow)
		_ = f.SetCellValue(sheet, cell, v)
	}
	_ = f.SetColWidth(sheet, "A", "G", 22)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("write excel: %w", err)
	}

	filename := fmt.Sprintf("exam_%d_completion.xlsx", examID)
	return buf.Bytes(), filename, nil
}
