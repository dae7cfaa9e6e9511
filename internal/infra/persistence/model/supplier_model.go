package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupplierModel mirrors the 'suppliers' table.
type SupplierModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_suppliers_user_id"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(64);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SupplierModel) TableName() string {
	return "suppliers"
}

// BeforeCreate assigns a time-ordered ID when none is set.
func (m *SupplierModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
