package model

type Supplier struct {
	BaseModel
	Name          string `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	ContactPerson string `gorm:"type:varchar(100)" json:"contactPerson"`
	Email         string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Phone         string `gorm:"type:varchar(30)" json:"phone"`
	Address       string `gorm:"type:varchar(500)" json:"address"`
	Notes         string `gorm:"type:varchar(500)" json:"notes" validate:"max=500"`
}
