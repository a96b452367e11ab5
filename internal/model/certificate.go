package model

// swagger:model Certificate
type Certificate struct {
	BaseModel
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
}

func (Certificate) TableName() string {
	return "certificates"
}
