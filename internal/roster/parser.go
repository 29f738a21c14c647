package roster

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	enc "github.com/MrJamesThe3rd/estate/internal/encoding"
)

var ErrUnknownFormat = errors.New("no matching roster format found: expected Building/Room/Area or Tòa nhà/Số phòng/Diện tích columns")

// delimiters are tried in order; spreadsheets in comma-decimal locales
// export with ';'.
var delimiters = []rune{';', ',', '\t'}

// Parser reads roster CSV exports. It detects the file encoding, the
// delimiter and the header profile.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) (*Sheet, error) {
	utf8r, charset, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	for _, comma := range delimiters {
		rows, err := readCSV(data, comma)
		if err != nil {
			continue
		}

		profile, cols, headerIdx := detectProfile(rows)
		if profile == nil {
			continue
		}

		parsed, err := parseRows(profile, cols, rows[headerIdx+1:], headerIdx)
		if err != nil {
			return nil, err
		}

		return &Sheet{Profile: profile.Name, Charset: charset, Rows: parsed}, nil
	}

	return nil, ErrUnknownFormat
}

func readCSV(data []byte, comma rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return reader.ReadAll()
}

// colIndex maps normalized column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			if name := normalizeHeader(cell); name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts apartments from the data rows. headerRowNum is the
// 0-based index of the header record, used for line numbers.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]Row, error) {
	buildingIdx := cols[p.BuildingCol]
	roomIdx := cols[p.RoomCol]
	areaIdx := cols[p.AreaCol]

	parsed := []Row{}

	for i, row := range rows {
		line := headerRowNum + i + 2 // 1-based, skipping header

		building := cellValue(row, buildingIdx)
		roomStr := cellValue(row, roomIdx)

		// Blank and footer rows carry neither a building nor a room.
		if building == "" && roomStr == "" {
			continue
		}

		if building == "" {
			return nil, fmt.Errorf("line %d: missing building", line)
		}

		room, err := strconv.Atoi(roomStr)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid room number %q", line, roomStr)
		}

		areaStr := cellValue(row, areaIdx)

		area, err := parseArea(areaStr)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid area %q", line, areaStr)
		}

		parsed = append(parsed, Row{Line: line, Building: building, RoomNumber: room, Area: area})
	}

	return parsed, nil
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
