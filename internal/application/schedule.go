package application

import (
	"sort"
	"time"

	"github.com/anujyadav2244/cricriser/internal/domain/entity"
)

// ScheduleOptions control fixture generation at league creation.
type ScheduleOptions struct {
	IncludeKnockouts  bool
	IncludeEliminator bool
}

// GenerateFixtures builds the full fixture list for a league: group-stage
// matches per the league's format type, optional knockouts with placeholder
// team names, dates spread across the league window, and match numbers
// assigned after ordering LEAGUE -> ELIMINATOR -> SEMI FINAL 1 -> SEMI FINAL
// 2 -> FINAL.
func GenerateFixtures(l *entity.League, opts ScheduleOptions) []*entity.Match {
	var matches []*entity.Match
	switch l.LeagueFormatType {
	case entity.FormatTypeDoubleRoundRobin:
		matches = roundRobin(l, true)
	case entity.FormatTypeGroup:
		matches = groupFormat(l)
	default:
		matches = roundRobin(l, false)
	}

	if opts.IncludeKnockouts {
		matches = append(matches, knockouts(l, opts.IncludeEliminator)...)
	}

	assignDates(l, matches)
	orderAndNumber(matches)
	return matches
}

func newFixture(l *entity.League, team1, team2, matchType string) *entity.Match {
	return &entity.Match{
		LeagueID:  l.ID,
		Team1:     team1,
		Team2:     team2,
		MatchType: matchType,
		Status:    entity.MatchStatusScheduled,
		Venue:     l.Venue,
	}
}

// roundRobin pairs teams by circle rotation. An odd team count gets a BYE
// slot that produces no fixture.
func roundRobin(l *entity.League, doubleRound bool) []*entity.Match {
	teams := append([]string(nil), l.Teams...)
	if len(teams)%2 != 0 {
		teams = append(teams, "BYE")
	}
	n := len(teams)
	rounds := n - 1
	perRound := n / 2

	var matches []*entity.Match
	rotating := teams
	for round := 0; round < rounds; round++ {
		for i := 0; i < perRound; i++ {
			t1, t2 := rotating[i], rotating[n-1-i]
			if t1 == "BYE" || t2 == "BYE" {
				continue
			}
			matches = append(matches, newFixture(l, t1, t2, entity.MatchTypeLeague))
			if doubleRound {
				matches = append(matches, newFixture(l, t2, t1, entity.MatchTypeLeague))
			}
		}
		// circle rotation: last team moves to index 1, first stays fixed
		next := make([]string, 0, n)
		next = append(next, rotating[0], rotating[n-1])
		next = append(next, rotating[1:n-1]...)
		rotating = next
	}
	return matches
}

// groupFormat alternates teams into two groups and plays all pairs within
// each group.
func groupFormat(l *entity.League) []*entity.Match {
	var groupA, groupB []string
	for i, t := range l.Teams {
		if i%2 == 0 {
			groupA = append(groupA, t)
		} else {
			groupB = append(groupB, t)
		}
	}
	matches := withinGroup(l, groupA)
	return append(matches, withinGroup(l, groupB)...)
}

func withinGroup(l *entity.League, group []string) []*entity.Match {
	var matches []*entity.Match
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			matches = append(matches, newFixture(l, group[i], group[j], entity.MatchTypeLeague))
		}
	}
	return matches
}

// knockouts are generated with placeholder names resolved once group-stage
// results are known.
func knockouts(l *entity.League, includeEliminator bool) []*entity.Match {
	var ms []*entity.Match
	if includeEliminator {
		ms = append(ms, newFixture(l, "Loser3", "Loser4", entity.MatchTypeEliminator))
	}
	ms = append(ms,
		newFixture(l, "Winner1", "Winner4", entity.MatchTypeSemiFinal1),
		newFixture(l, "Winner2", "Winner3", entity.MatchTypeSemiFinal2),
		newFixture(l, "WinnerSemi1", "WinnerSemi2", entity.MatchTypeFinal),
	)
	return ms
}

// assignDates spreads fixtures evenly across the league window at 10:00,
// at least one day apart. Dates keep the league's timezone.
func assignDates(l *entity.League, matches []*entity.Match) {
	if len(matches) == 0 {
		return
	}
	start := l.StartDate
	totalDays := int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
	interval := totalDays / len(matches)
	if interval < 1 {
		interval = 1
	}
	for i, m := range matches {
		d := start.AddDate(0, 0, i*interval)
		m.ScheduledDate = time.Date(d.Year(), d.Month(), d.Day(), 10, 0, 0, 0, d.Location())
	}
}

func typeRank(matchType string) int {
	switch matchType {
	case entity.MatchTypeLeague:
		return 1
	case entity.MatchTypeEliminator:
		return 2
	case entity.MatchTypeSemiFinal1:
		return 3
	case entity.MatchTypeSemiFinal2:
		return 4
	case entity.MatchTypeFinal:
		return 5
	}
	return 99
}

func orderAndNumber(matches []*entity.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return typeRank(matches[i].MatchType) < typeRank(matches[j].MatchType)
	})
	for i, m := range matches {
		m.MatchNo = i + 1
	}
}
