package entity

import "time"

// Squad size bounds enforced on team create/update.
const (
	SquadMin = 15
	SquadMax = 18
)

// Team is a roster of players inside one league. Captain and ViceCaptain
// are player ids and must be members of SquadPlayerIDs.
type Team struct {
	ID             string    `json:"id"`
	LeagueID       string    `json:"leagueId"`
	Name           string    `json:"name"`
	Coach          string    `json:"coach"`
	Captain        string    `json:"captain"`
	ViceCaptain    string    `json:"viceCaptain"`
	SquadPlayerIDs []string  `json:"squadPlayerIds"`
	LogoURL        string    `json:"logoUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
