package service

import (
	"testing"

	"elearning_backend/internal/model"
)

func placement(opts ...model.QuestionOption) model.ContainerQuestion {
	return model.ContainerQuestion{Options: opts}
}

func optionSet(n int, correctIdx int) []model.QuestionOption {
	labels := model.OptionLabels
	opts := make([]model.QuestionOption, 0, n)
	for i := 0; i < n; i++ {
		opts = append(opts, model.QuestionOption{
			Label:     labels[i],
			IsCorrect: i == correctIdx,
		})
	}
	return opts
}

func TestComputeContainerStats(t *testing.T) {
	tests := []struct {
		name         string
		questions    []model.ContainerQuestion
		wantTotal    int
		wantWithOpts int
		wantComplete int
		wantRate     int
	}{
		{
			name:      "empty container",
			questions: nil,
		},
		{
			name: "all complete",
			questions: []model.ContainerQuestion{
				placement(optionSet(4, 0)...),
				placement(optionSet(4, 2)...),
			},
			wantTotal:    2,
			wantWithOpts: 2,
			wantComplete: 2,
			wantRate:     100,
		},
		{
			name: "four options but no correct answer is incomplete",
			questions: []model.ContainerQuestion{
				placement(optionSet(4, -1)...),
			},
			wantTotal:    1,
			wantWithOpts: 1,
			wantComplete: 0,
			wantRate:     0,
		},
		{
			name: "three options is incomplete even with a correct answer",
			questions: []model.ContainerQuestion{
				placement(optionSet(3, 0)...),
			},
			wantTotal:    1,
			wantWithOpts: 1,
			wantComplete: 0,
			wantRate:     0,
		},
		{
			name: "mixed",
			questions: []model.ContainerQuestion{
				placement(optionSet(4, 1)...),
				placement(optionSet(2, 0)...),
				placement(),
			},
			wantTotal:    3,
			wantWithOpts: 2,
			wantComplete: 1,
			wantRate:     33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container := &model.ExamContainer{Questions: tt.questions}
			got := ComputeContainerStats(container)

			if got.TotalQuestions != tt.wantTotal {
				t.Errorf("TotalQuestions = %d, want %d", got.TotalQuestions, tt.wantTotal)
			}
			if got.QuestionsWithOptions != tt.wantWithOpts {
				t.Errorf("QuestionsWithOptions = %d, want %d", got.QuestionsWithOptions, tt.wantWithOpts)
			}
			if got.QuestionsComplete != tt.wantComplete {
				t.Errorf("QuestionsComplete = %d, want %d", got.QuestionsComplete, tt.wantComplete)
			}
			if got.CompletionRate != tt.wantRate {
				t.Errorf("CompletionRate = %d, want %d", got.CompletionRate, tt.wantRate)
			}
			if got.CompletionRate < 0 || got.CompletionRate > 100 {
				t.Errorf("CompletionRate %d out of [0,100]", got.CompletionRate)
			}
		})
	}
}

func TestComputeContainerStatsOrderIndependent(t *testing.T) {
	a := placement(optionSet(4, 0)...)
	b := placement(optionSet(2, -1)...)
	c := placement()

	forward := &model.ExamContainer{Questions: []model.ContainerQuestion{a, b, c}}
	backward := &model.ExamContainer{Questions: []model.ContainerQuestion{c, b, a}}

	if ComputeContainerStats(forward) != ComputeContainerStats(backward) {
		t.Error("statistics depend on question order")
	}
}

func TestComputeExamStats(t *testing.T) {
	containers := []model.ExamContainer{
		{Questions: []model.ContainerQuestion{
			placement(optionSet(4, 0)...),
			placement(optionSet(4, 3)...),
		}},
		{Questions: []model.ContainerQuestion{
			placement(optionSet(1, 0)...),
			placement(),
		}},
		{},
	}

	got := ComputeExamStats(containers)

	if got.TotalParts != 3 {
		t.Errorf("TotalParts = %d, want 3", got.TotalParts)
	}
	if got.TotalQuestions != 4 {
		t.Errorf("TotalQuestions = %d, want 4", got.TotalQuestions)
	}
	if got.QuestionsComplete != 2 {
		t.Errorf("QuestionsComplete = %d, want 2", got.QuestionsComplete)
	}
	if got.QuestionsIncomplete != 2 {
		t.Errorf("QuestionsIncomplete = %d, want 2", got.QuestionsIncomplete)
	}
	if got.CompletionRate != 50 {
		t.Errorf("CompletionRate = %d, want 50", got.CompletionRate)
	}
}

func TestComputeExamStatsEmpty(t *testing.T) {
	got := ComputeExamStats(nil)
	if got.TotalParts != 0 || got.TotalQuestions != 0 || got.CompletionRate != 0 {
		t.Errorf("empty exam stats = %+v, want zeros", got)
	}
}
