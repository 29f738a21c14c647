package building

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("building not found")
	// ErrInUse is returned when a building still owns apartments.
	ErrInUse = errors.New("building has apartments")
)

// Building groups apartments under one address.
type Building struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
