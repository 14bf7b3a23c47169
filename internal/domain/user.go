package domain

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// User Model
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`                 // Primary key
	Email       string    `gorm:"unique;not null" json:"email"`         // Unique login email
	Name        string    `json:"name"`                                 // Display name
	Password    string    `gorm:"not null" json:"-"`                    // Bcrypt hash, never serialized
	CreatedOn   time.Time `gorm:"autoCreateTime" json:"created_on"`     // Creation timestamp
	IsActive    bool      `gorm:"default:true" json:"is_active"`        // Inactive users cannot authenticate
	IsStaff     bool      `gorm:"default:false" json:"is_staff"`        // Staff flag for admin endpoints
	IsSuperuser bool      `gorm:"default:false" json:"is_superuser"`    // Superuser flag
}

// String representation of a user is its email.
func (u User) String() string {
	return u.Email
}

// NormalizeEmail lowercases the domain part of an email address. The local
// part keeps its casing.
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

// SetPassword replaces the user's password with a bcrypt hash of the given
// cleartext.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword compares a cleartext password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// CreateUser creates, saves and returns a new user with a normalized email
// and a hashed password. New users are active and carry no staff rights.
func CreateUser(db *gorm.DB, email, password, name string) (*User, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	user := User{
		Email:    NormalizeEmail(email),
		Name:     name,
		IsActive: true,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, translateDuplicate(err)
	}
	return &user, nil
}

// CreateSuperuser creates a user via CreateUser and promotes it to staff and
// superuser.
func CreateSuperuser(db *gorm.DB, email, password string) (*User, error) {
	user, err := CreateUser(db, email, password, "")
	if err != nil {
		return nil, err
	}
	user.IsStaff = true
	user.IsSuperuser = true
	if err := db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate returns the active user matching email + password. Every
// failure mode returns the same generic error so callers cannot tell which
// field was wrong.
func Authenticate(db *gorm.DB, email, password string) (*User, error) {
	var user User
	err := db.Where("email = ? AND is_active = ?", NormalizeEmail(email), true).First(&user).Error
	if err != nil {
		return nil, ErrUnableToAuthenticate
	}
	if !user.CheckPassword(password) {
		return nil, ErrUnableToAuthenticate
	}
	return &user, nil
}

// translateDuplicate maps store-level unique-index violations to ErrDuplicate.
// MySQL and sqlite word their integrity errors differently.
func translateDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	msg := err.Error()
	if strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint") {
		return ErrDuplicate
	}
	return err
}
