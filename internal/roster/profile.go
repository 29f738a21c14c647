package roster

import "strings"

// Profile describes the header row of a roster export. Column names are
// matched case-insensitively.
type Profile struct {
	Name        string
	BuildingCol string
	RoomCol     string
	AreaCol     string
}

func (p Profile) requiredCols() []string {
	return []string{p.BuildingCol, p.RoomCol, p.AreaCol}
}

// profiles is the ordered list of header layouts tried during detection.
var profiles = []Profile{
	{
		Name:        "vi",
		BuildingCol: "tòa nhà",
		RoomCol:     "số phòng",
		AreaCol:     "diện tích",
	},
	{
		Name:        "en",
		BuildingCol: "building",
		RoomCol:     "room",
		AreaCol:     "area",
	},
}

func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
