package model

// ExamMedia is exam-level listening audio, distinct from per-container
// audio_url. Duration is stored in seconds as submitted.
// swagger:model ExamMedia
type ExamMedia struct {
	BaseModel
	ExamID   uint   `gorm:"index;not null" json:"exam_id"`
	AudioURL string `gorm:"size:512;not null" json:"audio_url"`
	Duration int    `gorm:"default:0" json:"duration"` // seconds

	// Display form of Duration ("3:05"), derived on read.
	DurationDisplay string `gorm:"-" json:"duration_display,omitempty"`
}

func (ExamMedia) TableName() string {
	return "exam_media"
}
