package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table.
// PrimaryImageID is maintained by the image workflows, which always move or clear
// it before deleting an image row. The PostgreSQL migrations back it with a
// foreign key (ON DELETE SET NULL); AutoMigrate leaves it a plain column.
type ProductModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index:idx_products_user_id"`
	SupplierID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_products_supplier_id"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Description    string          `gorm:"type:text;not null"`
	Price          decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_products_price_non_negative,price >= 0"`
	PrimaryImageID *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	User     *UserModel          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Supplier *SupplierModel      `gorm:"foreignKey:SupplierID;constraint:OnDelete:RESTRICT"`
	Images   []ProductImageModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BeforeCreate assigns a time-ordered ID when none is set.
func (m *ProductModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// ProductImageModel mirrors the 'product_images' table.
type ProductImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index:idx_product_images_product_id"`
	Path      string    `gorm:"type:varchar(512);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}

// BeforeCreate assigns a time-ordered ID when none is set.
func (m *ProductImageModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
