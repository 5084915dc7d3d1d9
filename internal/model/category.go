package model

type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Description string `gorm:"type:varchar(500)" json:"description" validate:"max=500"`
}
