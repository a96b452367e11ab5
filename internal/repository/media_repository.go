package repository

import (
	"errors"

	"elearning_backend/internal/model"
	"elearning_backend/internal/util"

	"gorm.io/gorm"
)

type MediaRepository struct {
	DB *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{DB: db}
}

func (r *MediaRepository) Create(media *model.ExamMedia) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var exam model.Exam
		if err := tx.First(&exam, media.ExamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.NotFoundErr("exam", media.ExamID)
			}
			return err
		}
		return tx.Create(media).Error
	})
}

func (r *MediaRepository) FindByID(id uint) (*model.ExamMedia, error) {
	var media model.ExamMedia
	err := r.DB.First(&media, id).Error
	return &media, err
}

func (r *MediaRepository) ListByExam(examID uint) ([]model.ExamMedia, error) {
	var media []model.ExamMedia
	err := r.DB.Where("exam_id = ?", examID).
		Order("created_at asc").Find(&media).Error
	return media, err
}

func (r *MediaRepository) Delete(id uint) error {
	result := r.DB.Delete(&model.ExamMedia{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.NotFoundErr("exam media", id)
	}
	return nil
}
