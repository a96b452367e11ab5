package service

import (
	"context"
	"errors"

	"elearning_backend/internal/model"
	"elearning_backend/internal/repository"
	"elearning_backend/internal/util"

	"gorm.io/gorm"
)

// QuestionService owns questions, their container placements, and options.
type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	OptionRepo   *repository.OptionRepository
	Cache        *ExamCache
}

func NewQuestionService(questionRepo *repository.QuestionRepository, optionRepo *repository.OptionRepository, cache *ExamCache) *QuestionService {
	return &QuestionService{
		QuestionRepo: questionRepo,
		OptionRepo:   optionRepo,
		Cache:        cache,
	}
}

type CreateQuestionRequest struct {
	ContainerID uint    `json:"container_id"`
	Content     string  `json:"content"`
	Explanation string  `json:"explanation"`
	Order       int     `json:"order"`
	ImageURL    *string `json:"image_url"`
	Score       float64 `json:"score"`
}

// CreateQuestion creates the question and attaches it to its container in a
// single transaction; the two-step create-then-link flow the admin UI used
// to drive cannot leave an orphaned question this way.
func (s *QuestionService) CreateQuestion(ctx context.Context, req CreateQuestionRequest) (*model.ContainerQuestion, error) {
	if req.Content == "" {
		return nil, util.Validationf("question content is required")
	}
	if req.Order <= 0 {
		return nil, util.Validationf("question order must be greater than zero")
	}
	if req.Score < 0 {
		return nil, util.Validationf("score must not be negative")
	}

	score := req.Score
	if score == 0 {
		score = 1.0
	}

	question := &model.Question{
		Content:     req.Content,
		Explanation: req.Explanation,
	}
	placement := &model.ContainerQuestion{
		ContainerID: req.ContainerID,
		Order:       req.Order,
		ImageURL:    req.ImageURL,
		Score:       score,
	}

	if err := s.QuestionRepo.CreateAndAttach(question, placement); err != nil {
		return nil, err
	}

	placement.Question = *question
	s.invalidateByContainer(ctx, req.ContainerID)
	return placement, nil
}

type AttachQuestionRequest struct {
	ContainerID uint    `json:"container_id"`
	QuestionID  uint    `json:"question_id"`
	Order       int     `json:"order"`
	ImageURL    *string `json:"image_url"`
	Score       float64 `json:"score"`
}

// AttachQuestion links an existing question to a container, enabling reuse
// of one question across several containers.
func (s *QuestionService) AttachQuestion(ctx context.Context, req AttachQuestionRequest) (*model.ContainerQuestion, error) {
	if req.Order <= 0 {
		return nil, util.Validationf("question order must be greater than zero")
	}
	if req.Score < 0 {
		return nil, util.Validationf("score must not be negative")
	}

	score := req.Score
	if score == 0 {
		score = 1.0
	}

	placement := &model.ContainerQuestion{
		ContainerID: req.ContainerID,
		QuestionID:  req.QuestionID,
		Order:       req.Order,
		ImageURL:    req.ImageURL,
		Score:       score,
	}

	if err := s.QuestionRepo.Attach(placement); err != nil {
		return nil, err
	}

	s.invalidateByContainer(ctx, req.ContainerID)
	return placement, nil
}

type UpdateQuestionRequest struct {
	Content     string `json:"content"`
	Explanation string `json:"explanation"`
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id uint, req UpdateQuestionRequest) (*model.Question, error) {
	if req.Content == "" {
		return nil, util.Validationf("question content is required")
	}

	question, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("question", id)
		}
		return nil, err
	}

	question.Content = req.Content
	question.Explanation = req.Explanation
	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) GetPlacement(id uint) (*model.ContainerQuestion, error) {
	placement, err := s.QuestionRepo.FindPlacement(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("container question", id)
		}
		return nil, err
	}
	return placement, nil
}

func (s *QuestionService) ReorderPlacement(ctx context.Context, id uint, order int) error {
	if order <= 0 {
		return util.Validationf("question order must be greater than zero")
	}

	examID, _ := s.QuestionRepo.ExamIDForPlacement(id)
	if err := s.QuestionRepo.UpdatePlacementOrder(id, order); err != nil {
		return err
	}

	s.Cache.Invalidate(ctx, examID)
	return nil
}

// DetachQuestion removes the placement and its options; the question row
// itself survives.
func (s *QuestionService) DetachQuestion(ctx context.Context, placementID uint) error {
	examID, _ := s.QuestionRepo.ExamIDForPlacement(placementID)
	if err := s.QuestionRepo.Detach(placementID); err != nil {
		return err
	}

	s.Cache.Invalidate(ctx, examID)
	return nil
}

type OptionRequest struct {
	ContainerQuestionID uint   `json:"container_question_id"`
	Label               string `json:"label"`
	Content             string `json:"content"`
	IsCorrect           bool   `json:"is_correct"`
	OrderIndex          int    `json:"order_index"`
}

func validateOptionRequest(req OptionRequest) error {
	if !model.ValidOptionLabel(req.Label) {
		return util.Validationf("label must be one of A, B, C, D")
	}
	if req.Content == "" {
		return util.Validationf("option content is required")
	}
	if req.OrderIndex < 0 {
		return util.Validationf("order index must not be negative")
	}
	return nil
}

func (s *QuestionService) CreateOption(ctx context.Context, req OptionRequest) (*model.QuestionOption, error) {
	if err := validateOptionRequest(req); err != nil {
		return nil, err
	}

	option := &model.QuestionOption{
		ContainerQuestionID: req.ContainerQuestionID,
		Label:               req.Label,
		Content:             req.Content,
		IsCorrect:           req.IsCorrect,
		OrderIndex:          req.OrderIndex,
	}

	if err := s.OptionRepo.Create(option); err != nil {
		return nil, err
	}

	examID, _ := s.QuestionRepo.ExamIDForPlacement(req.ContainerQuestionID)
	s.Cache.Invalidate(ctx, examID)
	return option, nil
}

func (s *QuestionService) UpdateOption(ctx context.Context, id uint, req OptionRequest) (*model.QuestionOption, error) {
	if err := validateOptionRequest(req); err != nil {
		return nil, err
	}

	option, err := s.OptionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("option", id)
		}
		return nil, err
	}

	option.Label = req.Label
	option.Content = req.Content
	option.IsCorrect = req.IsCorrect
	option.OrderIndex = req.OrderIndex

	if err := s.OptionRepo.Update(option); err != nil {
		return nil, err
	}

	examID, _ := s.QuestionRepo.ExamIDForPlacement(option.ContainerQuestionID)
	s.Cache.Invalidate(ctx, examID)
	return option, nil
}

func (s *QuestionService) DeleteOption(ctx context.Context, id uint) error {
	option, err := s.OptionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundErr("option", id)
		}
		return err
	}

	if err := s.OptionRepo.Delete(id); err != nil {
		return err
	}

	examID, _ := s.QuestionRepo.ExamIDForPlacement(option.ContainerQuestionID)
	s.Cache.Invalidate(ctx, examID)
	return nil
}

func (s *QuestionService) invalidateByContainer(ctx context.Context, containerID uint) {
	examID, err := s.QuestionRepo.ExamIDForContainer(containerID)
	if err != nil {
		return
	}
	s.Cache.Invalidate(ctx, examID)
}
