package repository

import (
	"errors"

	"elearning_backend/internal/model"
	"elearning_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContainerRepository struct {
	DB *gorm.DB
}

func NewContainerRepository(db *gorm.DB) *ContainerRepository {
	return &ContainerRepository{DB: db}
}

// Create inserts a container after verifying, inside the same transaction,
// that the exam exists and no sibling holds the requested display order.
func (r *ContainerRepository) Create(container *model.ExamContainer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var exam model.Exam
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&exam, container.ExamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.NotFoundErr("exam", container.ExamID)
			}
			return err
		}

		var taken int64
		if err := tx.Model(&model.ExamContainer{}).
			Where("exam_id = ? AND display_order = ?", container.ExamID, container.Order).
			Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return util.Conflictf("order %d is already used in this exam", container.Order)
		}

		return tx.Create(container).Error
	})
}

func (r *ContainerRepository) FindByID(id uint) (*model.ExamContainer, error) {
	var container model.ExamContainer
	err := r.DB.First(&container, id).Error
	return &container, err
}

// FindWithQuestions loads a container with its questions and options in
// display order, the shape the statistics computation expects.
func (r *ContainerRepository) FindWithQuestions(id uint) (*model.ExamContainer, error) {
	var container model.ExamContainer
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("container_questions.display_order asc")
		}).
		Preload("Questions.Question").
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_options.order_index asc")
		}).
		First(&container, id).Error
	return &container, err
}

func (r *ContainerRepository) FindByExam(examID uint) ([]model.ExamContainer, error) {
	var containers []model.ExamContainer
	err := r.DB.Where("exam_id = ?", examID).
		Order("display_order asc").Find(&containers).Error
	return containers, err
}

// Update saves the container, rejecting a display order already held by a
// different sibling.
func (r *ContainerRepository) Update(container *model.ExamContainer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&model.ExamContainer{}).
			Where("exam_id = ? AND display_order = ? AND id <> ?",
				container.ExamID, container.Order, container.ID).
			Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return util.Conflictf("order %d is already used in this exam", container.Order)
		}

		return tx.Save(container).Error
	})
}

// DeleteCascade removes the container, its container questions and their
// options, cleans up questions left unreferenced, then renumbers the
// surviving siblings contiguously from 1.
func (r *ContainerRepository) DeleteCascade(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var container model.ExamContainer
		if err := tx.First(&container, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.NotFoundErr("container", id)
			}
			return err
		}

		var cqIDs []uint
		if err := tx.Model(&model.ContainerQuestion{}).
			Where("container_id = ?", id).Pluck("id", &cqIDs).Error; err != nil {
			return err
		}

		var questionIDs []uint
		if err := tx.Model(&model.ContainerQuestion{}).
			Where("container_id = ?", id).
			Distinct().Pluck("question_id", &questionIDs).Error; err != nil {
			return err
		}

		if len(cqIDs) > 0 {
			if err := tx.Where("container_question_id IN ?", cqIDs).
				Delete(&model.QuestionOption{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&model.ContainerQuestion{}, cqIDs).Error; err != nil {
				return err
			}
		}

		if err := deleteOrphanQuestions(tx, questionIDs); err != nil {
			return err
		}

		if err := tx.Delete(&model.ExamContainer{}, id).Error; err != nil {
			return err
		}

		return renumberContainers(tx, container.ExamID)
	})
}

// UpdateAudioURL sets just the audio url on a container.
func (r *ContainerRepository) UpdateAudioURL(id uint, url *string) error {
	result := r.DB.Model(&model.ExamContainer{}).
		Where("id = ?", id).Update("audio_url", url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.NotFoundErr("container", id)
	}
	return nil
}

// renumberContainers rewrites display orders to 1..n, keeping relative order.
func renumberContainers(tx *gorm.DB, examID uint) error {
	var siblings []model.ExamContainer
	if err := tx.Where("exam_id = ?", examID).
		Order("display_order asc").Find(&siblings).Error; err != nil {
		return err
	}

	for id, want := range renumberPlan(siblings) {
		if err := tx.Model(&model.ExamContainer{}).
			Where("id = ?", id).
			Update("display_order", want).Error; err != nil {
			return err
		}
	}
	return nil
}

// renumberPlan maps container id to its new display order for every sibling
// not already in its contiguous 1..n slot. Input must be sorted by order.
func renumberPlan(siblings []model.ExamContainer) map[uint]int {
	plan := make(map[uint]int)
	for i, sibling := range siblings {
		if want := i + 1; sibling.Order != want {
			plan[sibling.ID] = want
		}
	}
	return plan
}
