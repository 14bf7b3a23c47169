package domain

// Location of a property to be rented. Belongs to exactly one country;
// deleting the country removes its locations.
type Location struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	Name      string  `gorm:"size:255;not null" json:"name"`
	CountryID uint    `gorm:"not null" json:"-"`
	Country   Country `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (l Location) String() string {
	return l.Name
}
