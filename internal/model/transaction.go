package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TxIn  = "in"
	TxOut = "out"
)

// Transaction is a stock movement. It references Product and User by id
// only; deleting either leaves the reference dangling. Records are never
// mutated after creation, only reversed by deletion.
type Transaction struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"productId" validate:"uuid_required"`
	Product   *Product  `json:"-" validate:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"userId"`
	User      *User     `json:"-" validate:"-"`
	Type      string    `gorm:"type:varchar(10);not null" json:"type" validate:"required"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Notes     string    `gorm:"type:varchar(500)" json:"notes"`
	Date      time.Time `gorm:"index" json:"date"`
}

// TransactionResponse joins a transaction with reduced projections of the
// referenced product and actor. Projections are nil when the referenced
// record no longer exists.
type TransactionResponse struct {
	ID        uuid.UUID   `json:"id"`
	Product   *ProductRef `json:"product"`
	User      *UserRef    `json:"user"`
	Type      string      `json:"type"`
	Quantity  int         `json:"quantity"`
	Notes     string      `json:"notes,omitempty"`
	Date      time.Time   `json:"date"`
	CreatedAt time.Time   `json:"createdAt"`
}

func (t *Transaction) ToResponse() TransactionResponse {
	resp := TransactionResponse{
		ID:        t.ID,
		Type:      t.Type,
		Quantity:  t.Quantity,
		Notes:     t.Notes,
		Date:      t.Date,
		CreatedAt: t.CreatedAt,
	}
	if t.Product != nil {
		resp.Product = t.Product.ToRef()
	}
	if t.User != nil {
		resp.User = t.User.ToRef()
	}
	return resp
}
