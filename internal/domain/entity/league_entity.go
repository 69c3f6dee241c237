package entity

import "time"

// League types and formats. Bilateral series are fixed at two teams;
// tournaments need at least three and an explicit fixture format.
const (
	LeagueTypeBilateral  = "BILATERAL"
	LeagueTypeTournament = "TOURNAMENT"

	LeagueFormatLimited = "LIMITED"
	LeagueFormatTest    = "TEST"

	FormatTypeSingleRoundRobin = "SINGLE_ROUND_ROBIN"
	FormatTypeDoubleRoundRobin = "DOUBLE_ROUND_ROBIN"
	FormatTypeGroup            = "GROUP"
)

// League is a bilateral series or a tournament owned by one admin.
// Teams holds the participating team names captured at creation; persisted
// teams reference the league by id.
type League struct {
	ID      string `json:"id"`
	AdminID string `json:"adminId"`
	Name    string `json:"name"`

	LeagueType string `json:"leagueType"` // BILATERAL or TOURNAMENT

	NoOfTeams   int      `json:"noOfTeams"`
	NoOfMatches int      `json:"noOfMatches"`
	Teams       []string `json:"teams"`

	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Tour      string    `json:"tour"`
	Venue     string    `json:"venue"`

	LeagueFormat string `json:"leagueFormat"` // LIMITED or TEST

	Umpires []string `json:"umpires"`

	LeagueFormatType string `json:"leagueFormatType"` // SINGLE_ROUND_ROBIN, DOUBLE_ROUND_ROBIN, GROUP

	OversPerInnings int `json:"oversPerInnings,omitempty"`
	TestDays        int `json:"testDays,omitempty"`

	LogoURL string `json:"logoUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
