package model

// Question holds the stem text only. Placement inside a container, with its
// order, score, and options, lives on ContainerQuestion, so a question can in
// principle be referenced by more than one container.
// swagger:model Question
type Question struct {
	BaseModel
	Content     string `gorm:"type:text;not null" json:"content"`
	Explanation string `gorm:"type:text" json:"explanation,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}
