package model

type Product struct {
	BaseModel
	Name        string  `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Description string  `gorm:"type:varchar(500)" json:"description" validate:"max=500"`
	Price       float64 `gorm:"not null;default:0" json:"price" validate:"gte=0"`
	Quantity    int     `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
	Category    string  `gorm:"type:varchar(100);not null;index" json:"category" validate:"required"`
	SKU         string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required"`
	ImageURL    *string `gorm:"type:varchar(500)" json:"imageUrl,omitempty"`
}

// ProductRef is the reduced projection returned inline with transactions.
type ProductRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	SKU  string `json:"sku"`
}

func (p *Product) ToRef() *ProductRef {
	return &ProductRef{
		ID:   p.ID.String(),
		Name: p.Name,
		SKU:  p.SKU,
	}
}
