package service

import (
	"errors"
	"testing"

	"elearning_backend/internal/util"
)

func wantValidation(t *testing.T, err error, wantErr bool) {
	t.Helper()
	if !wantErr {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}
	var target *util.ValidationError
	if !errors.As(err, &target) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
}

func TestValidateExamRequest(t *testing.T) {
	valid := ExamRequest{Title: "TOEIC Test 1", Duration: 120, Type: "TOEIC", Year: 2024}

	tests := []struct {
		name    string
		mutate  func(*ExamRequest)
		wantErr bool
	}{
		{"valid", func(r *ExamRequest) {}, false},
		{"ielts type", func(r *ExamRequest) { r.Type = "IELTS" }, false},
		{"missing title", func(r *ExamRequest) { r.Title = "" }, true},
		{"zero duration", func(r *ExamRequest) { r.Duration = 0 }, true},
		{"negative duration", func(r *ExamRequest) { r.Duration = -5 }, true},
		{"unknown type", func(r *ExamRequest) { r.Type = "TOEFL" }, true},
		{"lowercase type rejected", func(r *ExamRequest) { r.Type = "toeic" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			wantValidation(t, validateExamRequest(req), tt.wantErr)
		})
	}
}

func TestValidateContainerRequest(t *testing.T) {
	skill := "listening"
	badSkill := "typing"
	negLimit := -1

	valid := ContainerRequest{
		ExamID:  1,
		Type:    "toeic_group",
		Order:   1,
		Content: "Part 1: Photographs",
	}

	tests := []struct {
		name    string
		mutate  func(*ContainerRequest)
		wantErr bool
	}{
		{"valid", func(r *ContainerRequest) {}, false},
		{"with skill", func(r *ContainerRequest) { r.Skill = &skill }, false},
		{"missing content", func(r *ContainerRequest) { r.Content = "" }, true},
		{"unknown type", func(r *ContainerRequest) { r.Type = "chapter" }, true},
		{"zero order", func(r *ContainerRequest) { r.Order = 0 }, true},
		{"unknown skill", func(r *ContainerRequest) { r.Skill = &badSkill }, true},
		{"negative time limit", func(r *ContainerRequest) { r.TimeLimit = &negLimit }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			wantValidation(t, validateContainerRequest(req), tt.wantErr)
		})
	}
}

func TestValidateOptionRequest(t *testing.T) {
	valid := OptionRequest{
		ContainerQuestionID: 1,
		Label:               "A",
		Content:             "To the station",
		OrderIndex:          0,
	}

	tests := []struct {
		name    string
		mutate  func(*OptionRequest)
		wantErr bool
	}{
		{"valid", func(r *OptionRequest) {}, false},
		{"label D", func(r *OptionRequest) { r.Label = "D" }, false},
		{"label E rejected", func(r *OptionRequest) { r.Label = "E" }, true},
		{"lowercase label rejected", func(r *OptionRequest) { r.Label = "a" }, true},
		{"empty label", func(r *OptionRequest) { r.Label = "" }, true},
		{"missing content", func(r *OptionRequest) { r.Content = "" }, true},
		{"negative order index", func(r *OptionRequest) { r.OrderIndex = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			wantValidation(t, validateOptionRequest(req), tt.wantErr)
		})
	}
}
