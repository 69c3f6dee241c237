package entity

import "time"

// Match types in playing order. Knockout fixtures carry placeholder team
// names (Winner1, Loser3, WinnerSemi1...) until results are known.
const (
	MatchTypeLeague     = "LEAGUE"
	MatchTypeEliminator = "ELIMINATOR"
	MatchTypeSemiFinal1 = "SEMI FINAL 1"
	MatchTypeSemiFinal2 = "SEMI FINAL 2"
	MatchTypeFinal      = "FINAL"

	MatchStatusScheduled = "Scheduled"
)

// Match is one scheduled fixture of a league.
type Match struct {
	ID            string    `json:"id"`
	LeagueID      string    `json:"leagueId"`
	MatchNo       int       `json:"matchNo"`
	Team1         string    `json:"team1"`
	Team2         string    `json:"team2"`
	MatchType     string    `json:"matchType"`
	Status        string    `json:"status"`
	Venue         string    `json:"venue,omitempty"`
	ScheduledDate time.Time `json:"scheduledDate"`
}
