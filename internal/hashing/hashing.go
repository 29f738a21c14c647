package hashing

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt hashes secrets with bcrypt at a fixed cost.
type Bcrypt struct {
	cost int
}

func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		return "", fmt.Errorf("hashing: %w", err)
	}

	return string(hash), nil
}

// Compare reports whether plain matches hash.
func (b *Bcrypt) Compare(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
