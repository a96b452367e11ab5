package model

type ExamType string

const (
	ExamTypeTOEIC ExamType = "TOEIC"
	ExamTypeIELTS ExamType = "IELTS"
)

func (t ExamType) Valid() bool {
	return t == ExamTypeTOEIC || t == ExamTypeIELTS
}

// swagger:model Exam
type Exam struct {
	BaseModel
	Title         string       `gorm:"size:255;not null" json:"title"`
	Duration      int          `gorm:"not null" json:"duration"` // minutes
	Code          string       `gorm:"size:50" json:"code"`
	Year          int          `gorm:"default:0" json:"year"`
	Type          ExamType     `gorm:"type:enum('TOEIC','IELTS');not null" json:"type"`
	CertificateID *uint        `gorm:"index" json:"certificate_id,omitempty"`
	Certificate   *Certificate `gorm:"foreignKey:CertificateID" json:"certificate,omitempty"`
	Source        string       `gorm:"size:255" json:"source,omitempty"`

	// Recomputed from the question graph on read, never stored.
	TotalQuestions int `gorm:"-" json:"total_questions"`

	Containers []ExamContainer `gorm:"foreignKey:ExamID" json:"containers,omitempty"`
	Media      []ExamMedia     `gorm:"foreignKey:ExamID" json:"media,omitempty"`
}

func (Exam) TableName() string {
	return "exams"
}
