package repository

import (
	"elearning_backend/internal/model"
	"elearning_backend/internal/util"
)

// ValidateOptionInsert checks a prospective option against the siblings
// already on its container question: the 4-option cap, label uniqueness, and
// the single-correct-answer rule. Callers run it inside the same transaction
// that holds the parent row lock, so two concurrent inserts cannot both see
// room for a 4th option.
func ValidateOptionInsert(existing []model.QuestionOption, label string, isCorrect bool) error {
	if len(existing) >= model.MaxOptionsPerQuestion {
		return util.Capacityf("question already has %d options", model.MaxOptionsPerQuestion)
	}

	for _, opt := range existing {
		if opt.Label == label {
			return util.Conflictf("label %s is already used on this question", label)
		}
		if isCorrect && opt.IsCorrect {
			return util.Conflictf("question already has a correct option (%s)", opt.Label)
		}
	}

	return nil
}

// ValidateOptionUpdate applies the same label and correctness rules when an
// existing option changes, ignoring the option being updated itself.
func ValidateOptionUpdate(existing []model.QuestionOption, optionID uint, label string, isCorrect bool) error {
	for _, opt := range existing {
		if opt.ID == optionID {
			continue
		}
		if opt.Label == label {
			return util.Conflictf("label %s is already used on this question", label)
		}
		if isCorrect && opt.IsCorrect {
			return util.Conflictf("question already has a correct option (%s)", opt.Label)
		}
	}

	return nil
}
