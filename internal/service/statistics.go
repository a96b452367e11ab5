package service

import "elearning_backend/internal/model"

// ContainerStatistics summarizes authoring completeness for one container.
// A question counts as complete when it carries all four options and at
// least one of them is marked correct.
type ContainerStatistics struct {
	ContainerID          uint `json:"container_id"`
	TotalQuestions       int  `json:"total_questions"`
	QuestionsWithOptions int  `json:"questions_with_options"`
	QuestionsComplete    int  `json:"questions_complete"`
	CompletionRate       int  `json:"completion_rate"` // integer percent
}

// ExamStatistics sums container statistics across an exam.
type ExamStatistics struct {
	TotalParts          int `json:"total_parts"`
	TotalQuestions      int `json:"total_questions"`
	QuestionsComplete   int `json:"questions_complete"`
	QuestionsIncomplete int `json:"questions_incomplete"`
	CompletionRate      int `json:"completion_rate"`
}

// ComputeContainerStats is a pure count over already-loaded rows: no side
// effects, result independent of slice order.
func ComputeContainerStats(container *model.ExamContainer) ContainerStatistics {
	stats := ContainerStatistics{ContainerID: container.ID}

	for _, placement := range container.Questions {
		stats.TotalQuestions++
		if len(placement.Options) > 0 {
			stats.QuestionsWithOptions++
		}
		if questionComplete(placement.Options) {
			stats.QuestionsComplete++
		}
	}

	stats.CompletionRate = ratePercent(stats.QuestionsComplete, stats.TotalQuestions)
	return stats
}

// ComputeExamStats folds container statistics into exam totals.
func ComputeExamStats(containers []model.ExamContainer) ExamStatistics {
	stats := ExamStatistics{TotalParts: len(containers)}

	for i := range containers {
		cs := ComputeContainerStats(&containers[i])
		stats.TotalQuestions += cs.TotalQuestions
		stats.QuestionsComplete += cs.QuestionsComplete
	}

	stats.QuestionsIncomplete = stats.TotalQuestions - stats.QuestionsComplete
	stats.CompletionRate = ratePercent(stats.QuestionsComplete, stats.TotalQuestions)
	return stats
}

func questionComplete(options []model.QuestionOption) bool {
	if len(options) != model.MaxOptionsPerQuestion {
		return false
	}
	for _, opt := range options {
		if opt.IsCorrect {
			return true
		}
	}
	return false
}

// ratePercent returns complete/total as an integer percentage, 0 when the
// container has no questions.
func ratePercent(complete, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(complete) / float64(total) * 100)
}
