package repository

import (
	"elearning_backend/internal/model"

	"gorm.io/gorm"
)

type ExamRepository struct {
	DB *gorm.DB
}

func NewExamRepository(db *gorm.DB) *ExamRepository {
	return &ExamRepository{DB: db}
}

func (r *ExamRepository) Create(exam *model.Exam) error {
	return r.DB.Create(exam).Error
}

func (r *ExamRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.Preload("Certificate").First(&exam, id).Error
	return &exam, err
}

// FindDetail loads the full authoring tree: containers in display order, each
// container's questions in display order with their question rows and options.
func (r *ExamRepository) FindDetail(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.
		Preload("Certificate").
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("exam_media.created_at asc")
		}).
		Preload("Containers", func(db *gorm.DB) *gorm.DB {
			return db.Order("exam_containers.display_order asc")
		}).
		Preload("Containers.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("container_questions.display_order asc")
		}).
		Preload("Containers.Questions.Question").
		Preload("Containers.Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_options.order_index asc")
		}).
		First(&exam, id).Error
	return &exam, err
}

func (r *ExamRepository) List(page, limit int, examType, search string, year int) ([]model.Exam, int64, error) {
	var exams []model.Exam
	var total int64

	query := r.DB.Model(&model.Exam{})
	if examType != "" {
		query = query.Where("type = ?", examType)
	}
	if year > 0 {
		query = query.Where("year = ?", year)
	}
	if search != "" {
		query = query.Where("title LIKE ? OR code LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("Certificate").
		Order("created_at desc").Offset(offset).Limit(limit).Find(&exams).Error
	return exams, total, err
}

func (r *ExamRepository) Update(exam *model.Exam) error {
	return r.DB.Save(exam).Error
}

// CountQuestions is the lazy total_questions recomputation for one exam.
func (r *ExamRepository) CountQuestions(examID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ContainerQuestion{}).
		Joins("JOIN exam_containers ON exam_containers.id = container_questions.container_id").
		Where("exam_containers.exam_id = ? AND exam_containers.deleted_at IS NULL", examID).
		Count(&count).Error
	return count, err
}

// DeleteCascade removes an exam together with its containers, container
// questions, options, media, and any question row whose last reference was
// one of the deleted container questions. Single transaction, so a failed
// delete leaves the graph untouched.
func (r *ExamRepository) DeleteCascade(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var containerIDs []uint
		if err := tx.Model(&model.ExamContainer{}).
			Where("exam_id = ?", id).Pluck("id", &containerIDs).Error; err != nil {
			return err
		}

		if len(containerIDs) > 0 {
			var cqIDs []uint
			if err := tx.Model(&model.ContainerQuestion{}).
				Where("container_id IN ?", containerIDs).Pluck("id", &cqIDs).Error; err != nil {
				return err
			}

			var questionIDs []uint
			if err := tx.Model(&model.ContainerQuestion{}).
				Where("container_id IN ?", containerIDs).
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

			if err := tx.Delete(&model.ExamContainer{}, containerIDs).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("exam_id = ?", id).Delete(&model.ExamMedia{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Exam{}, id).Error
	})
}

// deleteOrphanQuestions drops questions from candidateIDs that no surviving
// container question references.
func deleteOrphanQuestions(tx *gorm.DB, candidateIDs []uint) error {
	if len(candidateIDs) == 0 {
		return nil
	}

	var stillUsed []uint
	if err := tx.Model(&model.ContainerQuestion{}).
		Where("question_id IN ?", candidateIDs).
		Distinct().Pluck("question_id", &stillUsed).Error; err != nil {
		return err
	}

	usedSet := make(map[uint]bool, len(stillUsed))
	for _, qid := range stillUsed {
		usedSet[qid] = true
	}

	var orphans []uint
	for _, qid := range candidateIDs {
		if !usedSet[qid] {
			orphans = append(orphans, qid)
		}
	}

	if len(orphans) == 0 {
		return nil
	}
	return tx.Delete(&model.Question{}, orphans).Error
}
