package repository

import (
	"errors"

	"elearning_backend/internal/model"
	"elearning_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// CreateAndAttach inserts the question and its container placement in one
// transaction, so a failure cannot leave an orphaned question behind.
func (r *QuestionRepository) CreateAndAttach(question *model.Question, placement *model.ContainerQuestion) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var container model.ExamContainer
		if err := tx.First(&container, placement.ContainerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.NotFoundErr("container", placement.ContainerID)
			}
			return err
		}

		if err := tx.Create(question).Error; err != nil {
			return err
		}

		placement.QuestionID = question.ID
		return tx.Create(placement).Error
	})
}

// Attach links an existing question to a container.
func (r *QuestionRepository) Attach(placement *model.ContainerQuestion) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var container model.ExamContainer
		if err := tx.First(&container, placement.ContainerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.NotFoundErr("container", placement.ContainerID)
			}
			return err
		}

		var question model.Question
		if err := tx.First(&question, placement.QuestionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.NotFoundErr("question", placement.QuestionID)
			}
			return err
		}

		return tx.Create(placement).Error
	})
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.First(&question, id).Error
	return &question, err
}

func (r *QuestionRepository) Update(question *model.Question) error {
	return r.DB.Save(question).Error
}

func (r *QuestionRepository) FindPlacement(id uint) (*model.ContainerQuestion, error) {
	var placement model.ContainerQuestion
	err := r.DB.Preload("Question").
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_options.order_index asc")
		}).
		First(&placement, id).Error
	return &placement, err
}

func (r *QuestionRepository) UpdatePlacement(placement *model.ContainerQuestion) error {
	return r.DB.Save(placement).Error
}

// UpdatePlacementImage sets just the image url on a container question.
func (r *QuestionRepository) UpdatePlacementImage(id uint, url *string) error {
	result := r.DB.Model(&model.ContainerQuestion{}).
		Where("id = ?", id).Update("image_url", url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.NotFoundErr("container question", id)
	}
	return nil
}

func (r *QuestionRepository) UpdatePlacementOrder(id uint, order int) error {
	result := r.DB.Model(&model.ContainerQuestion{}).
		Where("id = ?", id).Update("display_order", order)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.NotFoundErr("container question", id)
	}
	return nil
}

// Detach removes the container placement and its options. The underlying
// question row stays; other containers may still reference it.
func (r *QuestionRepository) Detach(placementID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var placement model.ContainerQuestion
		if err := tx.First(&placement, placementID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.NotFoundErr("container question", placementID)
			}
			return err
		}

		if err := tx.Where("container_question_id = ?", placementID).
			Delete(&model.QuestionOption{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.ContainerQuestion{}, placementID).Error
	})
}

// ExamIDForContainer resolves the owning exam, used for cache invalidation.
func (r *QuestionRepository) ExamIDForContainer(containerID uint) (uint, error) {
	var container model.ExamContainer
	err := r.DB.Select("exam_id").First(&container, containerID).Error
	return container.ExamID, err
}

// ExamIDForPlacement resolves the owning exam of a container question.
func (r *QuestionRepository) ExamIDForPlacement(placementID uint) (uint, error) {
	var placement model.ContainerQuestion
	if err := r.DB.Select("container_id").First(&placement, placementID).Error; err != nil {
		return 0, err
	}
	return r.ExamIDForContainer(placement.ContainerID)
}
