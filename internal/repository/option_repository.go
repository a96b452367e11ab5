package repository

import (
	"errors"

	"elearning_backend/internal/model"
	"elearning_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OptionRepository struct {
	DB *gorm.DB
}

func NewOptionRepository(db *gorm.DB) *OptionRepository {
	return &OptionRepository{DB: db}
}

// Create inserts an option under a row lock on its container question. The
// lock serializes concurrent inserts against the same question, making the
// 4-option cap and single-correct checks race-free.
func (r *OptionRepository) Create(option *model.QuestionOption) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var placement model.ContainerQuestion
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&placement, option.ContainerQuestionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.NotFoundErr("container question", option.ContainerQuestionID)
			}
			return err
		}

		var existing []model.QuestionOption
		if err := tx.Where("container_question_id = ?", option.ContainerQuestionID).
			Find(&existing).Error; err != nil {
			return err
		}

		if err := ValidateOptionInsert(existing, option.Label, option.IsCorrect); err != nil {
			return err
		}

		return tx.Create(option).Error
	})
}

func (r *OptionRepository) FindByID(id uint) (*model.QuestionOption, error) {
	var option model.QuestionOption
	err := r.DB.First(&option, id).Error
	return &option, err
}

// Update saves changed option fields under the same parent-row lock as
// Create, since an update can flip is_correct or change the label.
func (r *OptionRepository) Update(option *model.QuestionOption) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var placement model.ContainerQuestion
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&placement, option.ContainerQuestionID).Error; err != nil {
			return err
		}

		var existing []model.QuestionOption
		if err := tx.Where("container_question_id = ?", option.ContainerQuestionID).
			Find(&existing).Error; err != nil {
			return err
		}

		if err := ValidateOptionUpdate(existing, option.ID, option.Label, option.IsCorrect); err != nil {
			return err
		}

		return tx.Save(option).Error
	})
}

func (r *OptionRepository) Delete(id uint) error {
	result := r.DB.Delete(&model.QuestionOption{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.NotFoundErr("option", id)
	}
	return nil
}

func (r *OptionRepository) ListByPlacement(placementID uint) ([]model.QuestionOption, error) {
	var options []model.QuestionOption
	err := r.DB.Where("container_question_id = ?", placementID).
		Order("order_index asc").Find(&options).Error
	return options, err
}
