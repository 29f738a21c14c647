package resident

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("resident not found")
	ErrEmailTaken = errors.New("email already registered")
)

type Role string

const (
	RoleResident Role = "resident"
	RoleAdmin    Role = "admin"
)

// Resident is a registered user of the system. Admins are residents with the
// admin role.
type Resident struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	Phone        string    `json:"phone"`
	Role         Role      `json:"role"`
	RefreshToken *string   `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
