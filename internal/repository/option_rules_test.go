package repository

import (
	"errors"
	"testing"

	"elearning_backend/internal/model"
	"elearning_backend/internal/util"
)

func options(specs ...model.QuestionOption) []model.QuestionOption {
	return specs
}

func opt(id uint, label string, correct bool) model.QuestionOption {
	o := model.QuestionOption{Label: label, IsCorrect: correct}
	o.ID = id
	return o
}

func TestValidateOptionInsert(t *testing.T) {
	tests := []struct {
		name      string
		existing  []model.QuestionOption
		label     string
		isCorrect bool
		wantErr   interface{}
	}{
		{
			name:     "first option",
			existing: nil,
			label:    "A",
		},
		{
			name:      "fills the fourth slot",
			existing:  options(opt(1, "A", true), opt(2, "B", false), opt(3, "C", false)),
			label:     "D",
			isCorrect: false,
		},
		{
			name:     "fifth option rejected",
			existing: options(opt(1, "A", true), opt(2, "B", false), opt(3, "C", false), opt(4, "D", false)),
			label:    "A",
			wantErr:  &util.CapacityError{},
		},
		{
			name:     "duplicate label rejected",
			existing: options(opt(1, "A", false)),
			label:    "A",
			wantErr:  &util.ConflictError{},
		},
		{
			name:      "second correct answer rejected",
			existing:  options(opt(1, "A", true), opt(2, "B", false)),
			label:     "C",
			isCorrect: true,
			wantErr:   &util.ConflictError{},
		},
		{
			name:      "correct answer allowed when none exists",
			existing:  options(opt(1, "A", false), opt(2, "B", false)),
			label:     "C",
			isCorrect: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOptionInsert(tt.existing, tt.label, tt.isCorrect)
			checkGuardError(t, err, tt.wantErr)
		})
	}
}

func TestValidateOptionUpdate(t *testing.T) {
	existing := options(opt(1, "A", true), opt(2, "B", false), opt(3, "C", false))

	tests := []struct {
		name      string
		optionID  uint
		label     string
		isCorrect bool
		wantErr   interface{}
	}{
		{
			name:      "option keeps its own label and correctness",
			optionID:  1,
			label:     "A",
			isCorrect: true,
		},
		{
			name:     "taking a sibling label rejected",
			optionID: 2,
			label:    "A",
			wantErr:  &util.ConflictError{},
		},
		{
			name:      "second correct answer rejected",
			optionID:  2,
			label:     "B",
			isCorrect: true,
			wantErr:   &util.ConflictError{},
		},
		{
			name:     "relabel to a free slot",
			optionID: 3,
			label:    "D",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOptionUpdate(existing, tt.optionID, tt.label, tt.isCorrect)
			checkGuardError(t, err, tt.wantErr)
		})
	}
}

func checkGuardError(t *testing.T, err error, want interface{}) {
	t.Helper()

	if want == nil {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}

	if err == nil {
		t.Fatalf("expected %T, got nil", want)
	}

	switch want.(type) {
	case *util.CapacityError:
		var target *util.CapacityError
		if !errors.As(err, &target) {
			t.Fatalf("expected CapacityError, got %T: %v", err, err)
		}
	case *util.ConflictError:
		var target *util.ConflictError
		if !errors.As(err, &target) {
			t.Fatalf("expected ConflictError, got %T: %v", err, err)
		}
	default:
		t.Fatalf("unhandled expectation %T", want)
	}
}
