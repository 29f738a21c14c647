package roster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/apartment"
	"github.com/MrJamesThe3rd/estate/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=roster
type Repository interface {
	BeginImport(ctx context.Context) (ImportTx, error)
}

// ImportTx holds the import lock; no other import runs until it ends.
type ImportTx interface {
	Buildings(ctx context.Context) (map[string]uuid.UUID, error)
	Rooms(ctx context.Context) (map[RoomKey]bool, error)
	CreateApartment(ctx context.Context, a *apartment.Apartment) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo   Repository
	parser *Parser
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, parser: NewParser()}
}

// Import creates one apartment per roster row. It is all or nothing: when
// any row conflicts, nothing is written and the returned VALIDATION_ERROR
// carries the Result listing every conflict.
func (s *Service) Import(ctx context.Context, r io.Reader) (*Result, error) {
	sheet, err := s.parser.Parse(r)
	if err != nil {
		return nil, apperr.Invalid(err.Error())
	}

	tx, err := s.repo.BeginImport(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	buildings, err := tx.Buildings(ctx)
	if err != nil {
		return nil, err
	}

	rooms, err := tx.Rooms(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Profile:   sheet.Profile,
		Charset:   sheet.Charset,
		Created:   []*apartment.Apartment{},
		Conflicts: []Conflict{},
	}

	planned := make([]*apartment.Apartment, 0, len(sheet.Rows))

	for _, row := range sheet.Rows {
		a, reason := plan(row, buildings, rooms)
		if reason != "" {
			result.Conflicts = append(result.Conflicts, Conflict{Row: row, Reason: reason})
			continue
		}

		rooms[RoomKey{BuildingID: a.BuildingID, RoomNumber: a.RoomNumber}] = true
		planned = append(planned, a)
	}

	if len(result.Conflicts) > 0 {
		return nil, apperr.New(apperr.CodeValidation).WithData(result)
	}

	for _, a := range planned {
		if err := tx.CreateApartment(ctx, a); err != nil {
			if errors.Is(err, apartment.ErrRoomTaken) {
				return nil, apperr.Invalid(fmt.Sprintf("room %d was created concurrently", a.RoomNumber))
			}

			return nil, fmt.Errorf("importing room %d: %w", a.RoomNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing import: %w", err)
	}

	result.Created = planned

	return result, nil
}

// plan turns a row into an apartment, or explains why it cannot be created.
func plan(row Row, buildings map[string]uuid.UUID, rooms map[RoomKey]bool) (*apartment.Apartment, string) {
	buildingID, ok := buildings[BuildingKey(row.Building)]

	switch {
	case !ok:
		return nil, "unknown building"
	case row.RoomNumber <= 0:
		return nil, "room number must be positive"
	case !row.Area.IsPositive():
		return nil, "area must be positive"
	case rooms[RoomKey{BuildingID: buildingID, RoomNumber: row.RoomNumber}]:
		return nil, "room already exists"
	}

	return &apartment.Apartment{
		RoomNumber: row.RoomNumber,
		Area:       row.Area,
		BuildingID: buildingID,
	}, ""
}

// BuildingKey is the lookup form of a building name.
func BuildingKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
