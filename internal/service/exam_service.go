package service

import (
	"context"
	"errors"

	"elearning_backend/internal/model"
	"elearning_backend/internal/repository"
	"elearning_backend/internal/util"

	"gorm.io/gorm"
)

// ExamService owns the exam and container halves of the authoring graph.
type ExamService struct {
	ExamRepo      *repository.ExamRepository
	ContainerRepo *repository.ContainerRepository
	CertRepo      *repository.CertificateRepository
	Cache         *ExamCache
}

func NewExamService(examRepo *repository.ExamRepository, containerRepo *repository.ContainerRepository, certRepo *repository.CertificateRepository, cache *ExamCache) *ExamService {
	return &ExamService{
		ExamRepo:      examRepo,
		ContainerRepo: containerRepo,
		CertRepo:      certRepo,
		Cache:         cache,
	}
}

type ExamRequest struct {
	Title         string `json:"exam_title"`
	Duration      int    `json:"exam_duration"`
	Type          string `json:"exam_type"`
	Code          string `json:"code"`
	Year          int    `json:"year"`
	CertificateID *uint  `json:"certificate_id"`
	Source        string `json:"source"`
}

func validateExamRequest(req ExamRequest) error {
	if req.Title == "" {
		return util.Validationf("exam title is required")
	}
	if req.Duration <= 0 {
		return util.Validationf("exam duration must be greater than zero")
	}
	if !model.ExamType(req.Type).Valid() {
		return util.Validationf("exam type must be TOEIC or IELTS")
	}
	return nil
}

func (s *ExamService) CreateExam(req ExamRequest) (*model.Exam, error) {
	if err := validateExamRequest(req); err != nil {
		return nil, err
	}

	if req.CertificateID != nil {
		if _, err := s.CertRepo.FindByID(*req.CertificateID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.NotFoundErr("certificate", *req.CertificateID)
			}
			return nil, err
		}
	}

	exam := &model.Exam{
		Title:         req.Title,
		Duration:      req.Duration,
		Type:          model.ExamType(req.Type),
		Code:          req.Code,
		Year:          req.Year,
		CertificateID: req.CertificateID,
		Source:        req.Source,
	}
	if err := s.ExamRepo.Create(exam); err != nil {
		return nil, err
	}
	return exam, nil
}

func (s *ExamService) UpdateExam(ctx context.Context, id uint, req ExamRequest) (*model.Exam, error) {
	if err := validateExamRequest(req); err != nil {
		return nil, err
	}

	exam, err := s.ExamRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("exam", id)
		}
		return nil, err
	}

	exam.Title = req.Title
	exam.Duration = req.Duration
	exam.Type = model.ExamType(req.Type)
	exam.Code = req.Code
	exam.Year = req.Year
	exam.CertificateID = req.CertificateID
	exam.Source = req.Source
	exam.Certificate = nil

	if err := s.ExamRepo.Update(exam); err != nil {
		return nil, err
	}

	s.Cache.Invalidate(ctx, id)
	return exam, nil
}

func (s *ExamService) ListExams(page, limit int, examType, search string, year int) ([]model.Exam, int64, error) {
	exams, total, err := s.ExamRepo.List(page, limit, examType, search, year)
	if err != nil {
		return nil, 0, err
	}

	for i := range exams {
		count, err := s.ExamRepo.CountQuestions(exams[i].ID)
		if err != nil {
			return nil, 0, err
		}
		exams[i].TotalQuestions = int(count)
	}
	return exams, total, nil
}

// ExamDetailResponse is the authoring tree plus derived statistics. It is
// what the cache stores.
type ExamDetailResponse struct {
	Exam           *model.Exam           `json:"exam"`
	ContainerStats []ContainerStatistics `json:"container_stats"`
	Statistics     ExamStatistics        `json:"statistics"`
}

func (s *ExamService) GetExamDetail(ctx context.Context, id uint) (*ExamDetailResponse, error) {
	var cached ExamDetailResponse
	if s.Cache.GetDetail(ctx, id, &cached) {
		return &cached, nil
	}

	exam, err := s.ExamRepo.FindDetail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("exam", id)
		}
		return nil, err
	}

	containerStats := make([]ContainerStatistics, len(exam.Containers))
	for i := range exam.Containers {
		containerStats[i] = ComputeContainerStats(&exam.Containers[i])
	}

	examStats := ComputeExamStats(exam.Containers)
	exam.TotalQuestions = examStats.TotalQuestions

	for i := range exam.Media {
		exam.Media[i].DurationDisplay = util.FormatAudioDuration(exam.Media[i].Duration)
	}

	detail := &ExamDetailResponse{
		Exam:           exam,
		ContainerStats: containerStats,
		Statistics:     examStats,
	}

	s.Cache.SetDetail(ctx, id, detail)
	return detail, nil
}

func (s *ExamService) DeleteExam(ctx context.Context, id uint) error {
	if _, err := s.ExamRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundErr("exam", id)
		}
		return err
	}

	if err := s.ExamRepo.DeleteCascade(id); err != nil {
		return err
	}

	s.Cache.Invalidate(ctx, id)
	return nil
}

type ContainerRequest struct {
	ExamID      uint    `json:"exam_id"`
	Type        string  `json:"type"`
	Order       int     `json:"order"`
	Content     string  `json:"content"`
	Skill       *string `json:"skill"`
	Instruction *string `json:"instruction"`
	ImageURL    *string `json:"image_url"`
	AudioURL    *string `json:"audio_url"`
	TimeLimit   *int    `json:"time_limit"`
}

func validateContainerRequest(req ContainerRequest) error {
	if req.Content == "" {
		return util.Validationf("container content is required")
	}
	if !model.ContainerType(req.Type).Valid() {
		return util.Validationf("unknown container type: %s", req.Type)
	}
	if req.Order <= 0 {
		return util.Validationf("container order must be greater than zero")
	}
	if req.Skill != nil && !model.ContainerSkill(*req.Skill).Valid() {
		return util.Validationf("unknown container skill: %s", *req.Skill)
	}
	if req.TimeLimit != nil && *req.TimeLimit < 0 {
		return util.Validationf("time limit must not be negative")
	}
	return nil
}

func (s *ExamService) CreateContainer(ctx context.Context, req ContainerRequest) (*model.ExamContainer, error) {
	if err := validateContainerRequest(req); err != nil {
		return nil, err
	}

	container := &model.ExamContainer{
		ExamID:      req.ExamID,
		Type:        model.ContainerType(req.Type),
		Order:       req.Order,
		Content:     req.Content,
		Instruction: req.Instruction,
		ImageURL:    req.ImageURL,
		AudioURL:    req.AudioURL,
		TimeLimit:   req.TimeLimit,
	}
	if req.Skill != nil {
		skill := model.ContainerSkill(*req.Skill)
		container.Skill = &skill
	}

	if err := s.ContainerRepo.Create(container); err != nil {
		return nil, err
	}

	s.Cache.Invalidate(ctx, req.ExamID)
	return container, nil
}

func (s *ExamService) UpdateContainer(ctx context.Context, id uint, req ContainerRequest) (*model.ExamContainer, error) {
	if err := validateContainerRequest(req); err != nil {
		return nil, err
	}

	container, err := s.ContainerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("container", id)
		}
		return nil, err
	}

	container.Type = model.ContainerType(req.Type)
	container.Order = req.Order
	container.Content = req.Content
	container.Instruction = req.Instruction
	container.ImageURL = req.ImageURL
	container.AudioURL = req.AudioURL
	container.TimeLimit = req.TimeLimit
	container.Skill = nil
	if req.Skill != nil {
		skill := model.ContainerSkill(*req.Skill)
		container.Skill = &skill
	}

	if err := s.ContainerRepo.Update(container); err != nil {
		return nil, err
	}

	s.Cache.Invalidate(ctx, container.ExamID)
	return container, nil
}

func (s *ExamService) DeleteContainer(ctx context.Context, id uint) error {
	container, err := s.ContainerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundErr("container", id)
		}
		return err
	}

	if err := s.ContainerRepo.DeleteCascade(id); err != nil {
		return err
	}

	s.Cache.Invalidate(ctx, container.ExamID)
	return nil
}

// GetContainerStats recomputes statistics for a single container, used by
// the quick-add flow to refresh one part without refetching the whole exam.
func (s *ExamService) GetContainerStats(id uint) (*ContainerStatistics, error) {
	container, err := s.ContainerRepo.FindWithQuestions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("container", id)
		}
		return nil, err
	}

	stats := ComputeContainerStats(container)
	return &stats, nil
}
