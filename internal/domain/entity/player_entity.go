package entity

import "time"

// Player is a roster member. A player belongs to at most one team at a time;
// the active league window is used to reject overlapping signings.
type Player struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"` // BATTER, BOWLER, ALL_ROUNDER, WICKET_KEEPER
	BattingStyle string `json:"battingStyle,omitempty"`
	BowlingStyle string `json:"bowlingStyle,omitempty"`
	PhotoURL     string `json:"photoUrl,omitempty"`

	CurrentTeamID   string     `json:"currentTeamId,omitempty"`
	ActiveLeagueID  string     `json:"activeLeagueId,omitempty"`
	LeagueStartDate *time.Time `json:"leagueStartDate,omitempty"`
	LeagueEndDate   *time.Time `json:"leagueEndDate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
