package service

import (
	"context"
	"errors"

	"elearning_backend/internal/model"
	"elearning_backend/internal/repository"
	"elearning_backend/internal/util"

	"gorm.io/gorm"
)

// MediaService manages the audio tracks attached to an exam and the media
// urls hanging off containers and placed questions.
type MediaService struct {
	MediaRepo     *repository.MediaRepository
	ExamRepo      *repository.ExamRepository
	ContainerRepo *repository.ContainerRepository
	QuestionRepo  *repository.QuestionRepository
	Cache         *ExamCache
}

func NewMediaService(mediaRepo *repository.MediaRepository, examRepo *repository.ExamRepository, containerRepo *repository.ContainerRepository, questionRepo *repository.QuestionRepository, cache *ExamCache) *MediaService {
	return &MediaService{
		MediaRepo:     mediaRepo,
		ExamRepo:      examRepo,
		ContainerRepo: containerRepo,
		QuestionRepo:  questionRepo,
		Cache:         cache,
	}
}

type ExamMediaRequest struct {
	ExamID   uint   `json:"exam_id"`
	AudioURL string `json:"audio_url"`
	Duration int    `json:"duration"`
}

// AddExamMedia records an uploaded track against an exam. The duration is
// stored as given; probing happens at upload time, not here.
func (s *MediaService) AddExamMedia(ctx context.Context, req ExamMediaRequest) (*model.ExamMedia, error) {
	if req.AudioURL == "" {
		return nil, util.Validationf("audio url is required")
	}
	if req.Duration < 0 {
		return nil, util.Validationf("duration must not be negative")
	}

	media := &model.ExamMedia{
		ExamID:   req.ExamID,
		AudioURL: req.AudioURL,
		Duration: req.Duration,
	}
	if err := s.MediaRepo.Create(media); err != nil {
		return nil, err
	}

	media.DurationDisplay = util.FormatAudioDuration(media.Duration)
	s.Cache.Invalidate(ctx, req.ExamID)
	return media, nil
}

func (s *MediaService) ListExamMedia(examID uint) ([]model.ExamMedia, error) {
	if _, err := s.ExamRepo.FindByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("exam", examID)
		}
		return nil, err
	}

	media, err := s.MediaRepo.ListByExam(examID)
	if err != nil {
		return nil, err
	}

	for i := range media {
		media[i].DurationDisplay = util.FormatAudioDuration(media[i].Duration)
	}
	return media, nil
}

// AttachContainerAudio points a container at an uploaded track. A nil url
// clears it.
func (s *MediaService) AttachContainerAudio(ctx context.Context, containerID uint, url *string) error {
	if url != nil && *url == "" {
		return util.Validationf("audio url must not be empty")
	}

	if err := s.ContainerRepo.UpdateAudioURL(containerID, url); err != nil {
		return err
	}

	if examID, err := s.QuestionRepo.ExamIDForContainer(containerID); err == nil {
		s.Cache.Invalidate(ctx, examID)
	}
	return nil
}

// AttachQuestionImage points a placed question at an uploaded image. A nil
// url clears it.
func (s *MediaService) AttachQuestionImage(ctx context.Context, placementID uint, url *string) error {
	if url != nil && *url == "" {
		return util.Validationf("image url must not be empty")
	}

	if err := s.QuestionRepo.UpdatePlacementImage(placementID, url); err != nil {
		return err
	}

	if examID, err := s.QuestionRepo.ExamIDForPlacement(placementID); err == nil {
		s.Cache.Invalidate(ctx, examID)
	}
	return nil
}

func (s *MediaService) DeleteExamMedia(ctx context.Context, id uint) error {
	media, err := s.MediaRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundErr("exam media", id)
		}
		return err
	}

	if err := s.MediaRepo.Delete(id); err != nil {
		return err
	}

	s.Cache.Invalidate(ctx, media.ExamID)
	return nil
}
