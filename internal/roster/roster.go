package roster

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/estate/internal/apartment"
)

// Row is one apartment line of an imported sheet. Line is 1-based in the
// original file.
type Row struct {
	Line       int             `json:"line"`
	Building   string          `json:"building"`
	RoomNumber int             `json:"roomNumber"`
	Area       decimal.Decimal `json:"area"`
}

// Sheet is a parsed roster file.
type Sheet struct {
	Profile string `json:"profile"`
	Charset string `json:"charset"`
	Rows    []Row  `json:"rows"`
}

// Conflict explains why a row cannot be imported.
type Conflict struct {
	Row
	Reason string `json:"reason"`
}

// Result reports an import. Created is empty whenever Conflicts is not.
type Result struct {
	Profile   string                 `json:"profile"`
	Charset   string                 `json:"charset"`
	Created   []*apartment.Apartment `json:"created"`
	Conflicts []Conflict             `json:"conflicts"`
}

// RoomKey identifies an apartment within its building.
type RoomKey struct {
	BuildingID uuid.UUID
	RoomNumber int
}
