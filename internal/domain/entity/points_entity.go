package entity

// PointsRow is one team's standing in a league's points table.
type PointsRow struct {
	ID         string  `json:"id"`
	LeagueID   string  `json:"leagueId"`
	TeamName   string  `json:"teamName"`
	Played     int     `json:"played"`
	Won        int     `json:"won"`
	Lost       int     `json:"lost"`
	Tied       int     `json:"tied"`
	NoResult   int     `json:"noResult"`
	Points     int     `json:"points"`
	NetRunRate float64 `json:"netRunRate"`
}
