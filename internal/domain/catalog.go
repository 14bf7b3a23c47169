package domain

import "gorm.io/gorm"

// Country DB model
type Country struct {
	ID   uint   `gorm:"primaryKey" json:"-"`
	Name string `gorm:"unique;not null" json:"name"` // Unique country name
}

func (c Country) String() string {
	return c.Name
}

// PropertyType DB model
type PropertyType struct {
	ID   uint   `gorm:"primaryKey" json:"-"`
	Name string `gorm:"unique;not null" json:"name"` // Unique type name
}

func (p PropertyType) String() string {
	return p.Name
}

// Amenity available at a rented property
type Amenity struct {
	ID   uint   `gorm:"primaryKey" json:"-"`
	Name string `gorm:"unique;not null" json:"name"` // Unique amenity name
}

func (a Amenity) String() string {
	return a.Name
}

// Rental time units
const (
	UnitDay   = "DAY"
	UnitWeek  = "WEEK"
	UnitMonth = "MONTH"
	UnitYear  = "YEAR"
)

// Unit of time a property is rented by
type Unit struct {
	ID   uint   `gorm:"primaryKey" json:"-"`
	Name string `gorm:"size:20;default:MONTH" json:"name"` // One of DAY, WEEK, MONTH, YEAR
}

func (u Unit) String() string {
	return u.Name
}

// ValidateUnitName checks a unit name against the enumerated set. An empty
// name falls back to the MONTH default.
func ValidateUnitName(name string) (string, error) {
	if name == "" {
		return UnitMonth, nil
	}
	switch name {
	case UnitDay, UnitWeek, UnitMonth, UnitYear:
		return name, nil
	}
	return "", ErrInvalidUnit
}

// CreateUnit creates a unit row after validating the name.
func CreateUnit(db *gorm.DB, name string) (*Unit, error) {
	validated, err := ValidateUnitName(name)
	if err != nil {
		return nil, err
	}
	unit := Unit{Name: validated}
	if err := db.Create(&unit).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}
