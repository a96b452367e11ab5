package model

// MaxOptionsPerQuestion caps the answer choices of one container question.
const MaxOptionsPerQuestion = 4

// OptionLabels are the only labels a choice may carry.
var OptionLabels = []string{"A", "B", "C", "D"}

func ValidOptionLabel(label string) bool {
	for _, l := range OptionLabels {
		if l == label {
			return true
		}
	}
	return false
}

// swagger:model QuestionOption
type QuestionOption struct {
	BaseModel
	ContainerQuestionID uint   `gorm:"index;not null" json:"container_question_id"`
	Label               string `gorm:"size:1;not null" json:"label"`
	Content             string `gorm:"type:text;not null" json:"content"`
	IsCorrect           bool   `gorm:"default:false" json:"is_correct"`
	OrderIndex          int    `gorm:"default:0" json:"order_index"`
}

func (QuestionOption) TableName() string {
	return "question_options"
}
