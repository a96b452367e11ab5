package model

type ContainerType string

const (
	ContainerToeicGroup   ContainerType = "toeic_group"
	ContainerToeicSingle  ContainerType = "toeic_single"
	ContainerIeltsPassage ContainerType = "ielts_passage"
	ContainerWritingTask  ContainerType = "writing_task"
	ContainerSpeakingPart ContainerType = "speaking_part"
)

func (t ContainerType) Valid() bool {
	switch t {
	case ContainerToeicGroup, ContainerToeicSingle, ContainerIeltsPassage,
		ContainerWritingTask, ContainerSpeakingPart:
		return true
	}
	return false
}

type ContainerSkill string

const (
	SkillListening ContainerSkill = "listening"
	SkillReading   ContainerSkill = "reading"
	SkillWriting   ContainerSkill = "writing"
	SkillSpeaking  ContainerSkill = "speaking"
)

func (s ContainerSkill) Valid() bool {
	switch s {
	case SkillListening, SkillReading, SkillWriting, SkillSpeaking:
		return true
	}
	return false
}

// ExamContainer is one scored section ("part") of an exam, e.g. TOEIC Part 5.
// Order is unique within an exam and renumbered contiguously on delete.
// swagger:model ExamContainer
type ExamContainer struct {
	BaseModel
	ExamID      uint            `gorm:"index;not null" json:"exam_id"`
	Skill       *ContainerSkill `gorm:"type:enum('listening','reading','writing','speaking')" json:"skill,omitempty"`
	Type        ContainerType   `gorm:"type:enum('toeic_group','toeic_single','ielts_passage','writing_task','speaking_part');not null" json:"type"`
	Order       int             `gorm:"column:display_order;not null" json:"order"`
	Content     string          `gorm:"type:text;not null" json:"content"`
	Instruction *string         `gorm:"type:text" json:"instruction,omitempty"`
	ImageURL    *string         `gorm:"size:512" json:"image_url,omitempty"`
	AudioURL    *string         `gorm:"size:512" json:"audio_url,omitempty"`
	TimeLimit   *int            `json:"time_limit,omitempty"` // minutes

	Questions []ContainerQuestion `gorm:"foreignKey:ContainerID" json:"questions,omitempty"`
}

func (ExamContainer) TableName() string {
	return "exam_containers"
}
