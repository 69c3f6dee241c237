package application

import (
	"testing"
	"time"

	"github.com/anujyadav2244/cricriser/internal/domain/entity"
)

func testLeague(formatType string, teams ...string) *entity.League {
	return &entity.League{
		ID:               "league-1",
		Name:             "Test Cup",
		LeagueType:       entity.LeagueTypeTournament,
		Teams:            teams,
		NoOfTeams:        len(teams),
		Venue:            "Eden Gardens",
		LeagueFormatType: formatType,
		StartDate:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
	}
}

func countByType(matches []*entity.Match, matchType string) int {
	n := 0
	for _, m := range matches {
		if m.MatchType == matchType {
			n++
		}
	}
	return n
}

func TestSingleRoundRobinEvenTeams(t *testing.T) {
	l := testLeague(entity.FormatTypeSingleRoundRobin, "A", "B", "C", "D")
	matches := GenerateFixtures(l, ScheduleOptions{})

	// 4 teams, every pair once
	if len(matches) != 6 {
		t.Fatalf("got %d matches, want 6", len(matches))
	}
	seen := map[string]bool{}
	for _, m := range matches {
		if m.Team1 == m.Team2 {
			t.Errorf("team playing itself: %s", m.Team1)
		}
		a, b := m.Team1, m.Team2
		if a > b {
			a, b = b, a
		}
		pair := a + " vs " + b
		if seen[pair] {
			t.Errorf("duplicate pairing %s", pair)
		}
		seen[pair] = true
	}
}

func TestSingleRoundRobinOddTeamsGetsBye(t *testing.T) {
	l := testLeague(entity.FormatTypeSingleRoundRobin, "A", "B", "C", "D", "E")
	matches := GenerateFixtures(l, ScheduleOptions{})

	// 5 teams, every pair once, no BYE fixture persisted
	if len(matches) != 10 {
		t.Fatalf("got %d matches, want 10", len(matches))
	}
	for _, m := range matches {
		if m.Team1 == "BYE" || m.Team2 == "BYE" {
			t.Errorf("BYE must not appear in fixtures: %s vs %s", m.Team1, m.Team2)
		}
	}
}

func TestDoubleRoundRobinHasReverseFixtures(t *testing.T) {
	l := testLeague(entity.FormatTypeDoubleRoundRobin, "A", "B", "C", "D")
	matches := GenerateFixtures(l, ScheduleOptions{})

	if len(matches) != 12 {
		t.Fatalf("got %d matches, want 12", len(matches))
	}
	ordered := map[string]int{}
	for _, m := range matches {
		ordered[m.Team1+">"+m.Team2]++
	}
	for pair, n := range ordered {
		if n != 1 {
			t.Errorf("ordered pairing %s appears %d times, want 1", pair, n)
		}
	}
}

func TestGroupFormatSplitsAlternately(t *testing.T) {
	l := testLeague(entity.FormatTypeGroup, "A", "B", "C", "D", "E", "F")
	matches := GenerateFixtures(l, ScheduleOptions{})

	// groups {A,C,E} and {B,D,F}, all pairs within each: 3 + 3
	if len(matches) != 6 {
		t.Fatalf("got %d matches, want 6", len(matches))
	}
	groupA := map[string]bool{"A": true, "C": true, "E": true}
	for _, m := range matches {
		if groupA[m.Team1] != groupA[m.Team2] {
			t.Errorf("cross-group fixture %s vs %s", m.Team1, m.Team2)
		}
	}
}

func TestKnockoutsAppendedInOrder(t *testing.T) {
	l := testLeague(entity.FormatTypeSingleRoundRobin, "A", "B", "C", "D")
	matches := GenerateFixtures(l, ScheduleOptions{IncludeKnockouts: true, IncludeEliminator: true})

	if len(matches) != 10 {
		t.Fatalf("got %d matches, want 6 league + 4 knockouts", len(matches))
	}
	if countByType(matches, entity.MatchTypeEliminator) != 1 ||
		countByType(matches, entity.MatchTypeSemiFinal1) != 1 ||
		countByType(matches, entity.MatchTypeSemiFinal2) != 1 ||
		countByType(matches, entity.MatchTypeFinal) != 1 {
		t.Fatal("expected one of each knockout fixture")
	}

	wantOrder := []string{
		entity.MatchTypeLeague, entity.MatchTypeLeague, entity.MatchTypeLeague,
		entity.MatchTypeLeague, entity.MatchTypeLeague, entity.MatchTypeLeague,
		entity.MatchTypeEliminator,
		entity.MatchTypeSemiFinal1,
		entity.MatchTypeSemiFinal2,
		entity.MatchTypeFinal,
	}
	for i, m := range matches {
		if m.MatchType != wantOrder[i] {
			t.Errorf("position %d: type %s, want %s", i, m.MatchType, wantOrder[i])
		}
		if m.MatchNo != i+1 {
			t.Errorf("position %d: match no %d, want %d", i, m.MatchNo, i+1)
		}
	}

	final := matches[len(matches)-1]
	if final.Team1 != "WinnerSemi1" || final.Team2 != "WinnerSemi2" {
		t.Errorf("final should use placeholder names, got %s vs %s", final.Team1, final.Team2)
	}
}

func TestKnockoutsWithoutEliminator(t *testing.T) {
	l := testLeague(entity.FormatTypeSingleRoundRobin, "A", "B", "C", "D")
	matches := GenerateFixtures(l, ScheduleOptions{IncludeKnockouts: true})

	if countByType(matches, entity.MatchTypeEliminator) != 0 {
		t.Error("eliminator should be absent when not requested")
	}
	if countByType(matches, entity.MatchTypeFinal) != 1 {
		t.Error("final should still be generated")
	}
}

func TestFixtureDatesWithinWindowAtTen(t *testing.T) {
	l := testLeague(entity.FormatTypeSingleRoundRobin, "A", "B", "C", "D")
	matches := GenerateFixtures(l, ScheduleOptions{IncludeKnockouts: true})

	var prev time.Time
	for i, m := range matches {
		if m.ScheduledDate.Hour() != 10 || m.ScheduledDate.Minute() != 0 {
			t.Errorf("match %d scheduled at %v, want 10:00", i, m.ScheduledDate)
		}
		if m.ScheduledDate.Before(l.StartDate) {
			t.Errorf("match %d before league start", i)
		}
		if i > 0 && m.ScheduledDate.Before(prev) {
			t.Errorf("match %d scheduled before match %d", i, i-1)
		}
		prev = m.ScheduledDate
	}
}

func TestFixturesCarryLeagueVenueAndStatus(t *testing.T) {
	l := testLeague(entity.FormatTypeSingleRoundRobin, "A", "B")
	matches := GenerateFixtures(l, ScheduleOptions{})

	for _, m := range matches {
		if m.LeagueID != l.ID {
			t.Errorf("league id = %q", m.LeagueID)
		}
		if m.Status != entity.MatchStatusScheduled {
			t.Errorf("status = %q, want %q", m.Status, entity.MatchStatusScheduled)
		}
		if m.Venue != l.Venue {
			t.Errorf("venue = %q, want %q", m.Venue, l.Venue)
		}
	}
}
