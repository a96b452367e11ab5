package model

// ContainerQuestion places one Question inside one ExamContainer.
// swagger:model ContainerQuestion
type ContainerQuestion struct {
	BaseModel
	ContainerID uint     `gorm:"index;not null" json:"container_id"`
	QuestionID  uint     `gorm:"index;not null" json:"question_id"`
	Order       int      `gorm:"column:display_order;not null" json:"order"`
	ImageURL    *string  `gorm:"size:512" json:"image_url,omitempty"`
	Score       float64  `gorm:"default:1" json:"score"`
	Question    Question `gorm:"foreignKey:QuestionID" json:"question"`

	Options []QuestionOption `gorm:"foreignKey:ContainerQuestionID" json:"options,omitempty"`
}

func (ContainerQuestion) TableName() string {
	return "container_questions"
}
