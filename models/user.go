package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Role is the closed set of account roles. Anything else coming out of a
// token is treated as unauthenticated.
type Role string

const (
	RoleOwner Role = "owner"
	RoleStaff Role = "staff"
)

// ParseRole maps a raw claim value onto the enumeration.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleOwner:
		return RoleOwner, true
	case RoleStaff:
		return RoleStaff, true
	}
	return "", false
}

// CanManageCatalog reports whether the role may create, update or delete
// products, discount page content and staff accounts.
func (r Role) CanManageCatalog() bool {
	return r == RoleOwner
}

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null"`
	Name     string    `gorm:"not null"`

	Role Role `gorm:"type:varchar(20);not null"` // 'owner' or 'staff'

	LastLogin *time.Time
	IsActive  bool `gorm:"default:true"`

	gorm.Model
}

// Initialize UUID and hash password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New()
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), 14)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return
}

// CheckPassword compares a plaintext password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// DisplayName is the biller name stamped on bills: the explicit name if one
// was set, otherwise the email local-part.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if local, _, ok := strings.Cut(u.Email, "@"); ok && local != "" {
		return local
	}
	return "Staff"
}
