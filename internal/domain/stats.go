package domain

// StatsGroup is one row of the yearly reporting projection.
type StatsGroup struct {
	Group        string        `json:"group"`
	DefaultCount int           `json:"default_count"`
	RebirthCount int           `json:"rebirth_count"`
	Share        *float64      `json:"share,omitempty"`
	Monthly      []MonthlyStat `json:"monthly,omitempty"`
}

// MonthlyStat holds approved counts for a calendar month (1-12).
type MonthlyStat struct {
	Month        int `json:"month"`
	DefaultCount int `json:"default_count"`
	RebirthCount int `json:"rebirth_count"`
}

// StatsReport is the projection for a single year and dimension.
type StatsReport struct {
	Year      int            `json:"year"`
	Dimension StatsDimension `json:"dimension"`
	Total     int            `json:"total"`
	Groups    []StatsGroup   `json:"groups"`
}

// StatsBucket is a raw aggregate row: approved applications of one type
// for one group in one month.
type StatsBucket struct {
	Group string
	Month int
	Type  ApplicationType
	Count int
}

// UnknownGroup labels customers with no industry or region.
const UnknownGroup = "N/A"
