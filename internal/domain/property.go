package domain

import "math"

// Property Model: the rentable unit. Every reference cascades on delete, so
// removing an owner, location, type or unit removes the dependent listings.
type Property struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"size:255;not null" json:"name"`
	PricePerUnit float64 `gorm:"type:decimal(5,2);not null" json:"price_per_unit"` // Fixed point, 5 digits, 2 decimals
	Available    bool    `gorm:"default:true" json:"available"`
	Description  string  `gorm:"type:text" json:"description"`

	OwnerID        uint         `gorm:"not null" json:"-"` // User that posted the listing
	Owner          User         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	LocationID     uint         `gorm:"not null" json:"-"`
	Location       Location     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	PropertyTypeID uint         `gorm:"not null" json:"-"`
	PropertyType   PropertyType `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	UnitID         uint         `gorm:"not null" json:"-"`
	Unit           Unit         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (p Property) String() string {
	return p.Name
}

// ValidatePrice checks that a price fits the decimal(5,2) column: positive,
// below 1000 and with no more than 2 decimal places.
func ValidatePrice(price float64) error {
	if price <= 0 || price >= 1000 {
		return ErrInvalidPrice
	}
	cents := price * 100
	if math.Abs(cents-math.Round(cents)) > 1e-6 {
		return ErrInvalidPrice
	}
	return nil
}
