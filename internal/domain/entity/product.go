package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item owned by a user and sourced from one of that user's suppliers.
// Invariant: Supplier.UserID == UserID.
type Product struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"userId"`
	SupplierID     uuid.UUID       `json:"supplierId"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	PrimaryImageID *uuid.UUID      `json:"primaryImageId"` // nil, or the ID of one of Images.
	Supplier       *Supplier       `json:"supplier,omitempty"`
	Images         []*ProductImage `json:"images"` // Newest first.
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ProductImage is one uploaded image belonging to a product.
type ProductImage struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	Path      string    `json:"path"` // Opaque storage key.
	URL       string    `json:"url"`  // Path joined with the public base path.
	CreatedAt time.Time `json:"createdAt"`
}

// HasImage reports whether imageID belongs to this product's loaded image collection.
func (p *Product) HasImage(imageID uuid.UUID) bool {
	for _, img := range p.Images {
		if img.ID == imageID {
			return true
		}
	}

	return false
}

// PrimaryImage returns the designated primary image, or nil when unset.
func (p *Product) PrimaryImage() *ProductImage {
	if p.PrimaryImageID == nil {
		return nil
	}
	for _, img := range p.Images {
		if img.ID == *p.PrimaryImageID {
			return img
		}
	}

	return nil
}

// IsPrimary reports whether imageID is the product's current primary image.
func (p *Product) IsPrimary(imageID uuid.UUID) bool {
	return p.PrimaryImageID != nil && *p.PrimaryImageID == imageID
}
