package scoring

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/rsv-series/scoring/pkg/model"
)

// tieBreakRanks is the depth of the tie break vector: how many of the
// top finish positions are counted when separating equal totals.
const tieBreakRanks = 10

// StandingEntry is one event's contribution to a participant's season total.
//
//nolint:tagliatelle // client compatibility
type StandingEntry struct {
	EventID   string `json:"eventId"`
	Points    int    `json:"points"`
	Rank      int    `json:"rank,omitempty"`
	IsDropped bool   `json:"isDropped"`
}

// Standing is one row of a season table.
//
//nolint:tagliatelle // client compatibility
type Standing struct {
	ParticipantID    string           `json:"participantId"`
	ParticipantName  string           `json:"participantName"`
	ParticipantClass model.PerfClass  `json:"participantClass"`
	Group            model.GroupLabel `json:"group"`
	Results          []StandingEntry  `json:"results"`
	FinalPoints      int              `json:"finalPoints"`
	TieBreakerScores []int            `json:"tieBreakerScores"`
	Position         int              `json:"position"`
}

// CalculateOverallStandings folds scored results over all finished events
// into the three ranked season tables. Dropped results stay visible in the
// entry list but are excluded from the total; a participant's only result
// is never dropped. The ordering within a group is a total order, so
// repeated runs produce identical tables.
func CalculateOverallStandings(
	results []ScoredResult,
	participants []model.Participant,
	events []model.Event,
	settings *model.Settings,
) (map[model.GroupLabel][]Standing, error) {
	finished := lo.Filter(events, func(e model.Event, _ int) bool { return e.Finished })
	slices.SortFunc(finished, func(a, b model.Event) int {
		if c := cmp.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	eventOrder := make(map[string]int, len(finished))
	for i, e := range finished {
		eventOrder[e.ID] = i
	}

	byParticipant := make(map[string]*model.Participant, len(participants))
	for i := range participants {
		byParticipant[participants[i].ID] = &participants[i]
	}

	resultsFor := lo.GroupBy(
		lo.Filter(results, func(r ScoredResult, _ int) bool {
			_, ok := eventOrder[r.EventID]
			return ok
		}),
		func(r ScoredResult) string { return r.ParticipantID },
	)

	standings := map[model.GroupLabel][]Standing{
		model.GroupHobby:     {},
		model.GroupAmbitious: {},
		model.GroupWomen:     {},
	}

	for participantID, rs := range resultsFor {
		p, ok := byParticipant[participantID]
		if !ok {
			continue
		}
		if _, err := model.ParsePerfClass(string(p.PerfClass)); err != nil {
			return nil, fmt.Errorf("participant %s: %w", p.ID, err)
		}
		if _, err := model.ParseGender(string(p.Gender)); err != nil {
			return nil, fmt.Errorf("participant %s: %w", p.ID, err)
		}

		entries := buildEntries(rs, eventOrder, settings.DropScores)
		standing := Standing{
			ParticipantID:    p.ID,
			ParticipantName:  p.Name(),
			ParticipantClass: p.PerfClass,
			Group:            ParticipantGroup(p),
			Results:          entries,
			FinalPoints: lo.SumBy(entries, func(e StandingEntry) int {
				if e.IsDropped {
					return 0
				}
				return e.Points
			}),
			TieBreakerScores: tieBreakerScores(entries),
		}
		standings[standing.Group] = append(standings[standing.Group], standing)
	}

	for group, rows := range standings {
		slices.SortFunc(rows, compareStandings)
		for i := range rows {
			rows[i].Position = i + 1
		}
		standings[group] = rows
	}
	return standings, nil
}

// buildEntries orders a participant's results by event date and applies the
// drop score rule: with more than one entry, the dropScores lowest entries
// are excluded from the total (but never all of them, at least the best
// entry always counts).
func buildEntries(
	results []ScoredResult,
	eventOrder map[string]int,
	dropScores int,
) []StandingEntry {
	entries := lo.Map(results, func(r ScoredResult, _ int) StandingEntry {
		return StandingEntry{EventID: r.EventID, Points: r.Points, Rank: r.Rank}
	})
	slices.SortFunc(entries, func(a, b StandingEntry) int {
		return cmp.Compare(eventOrder[a.EventID], eventOrder[b.EventID])
	})

	if len(entries) < 2 || dropScores < 1 {
		return entries
	}
	toDrop := min(dropScores, len(entries)-1)

	// drop the lowest scores; among equals the earlier event is dropped
	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		if c := cmp.Compare(entries[a].Points, entries[b].Points); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	for _, idx := range order[:toDrop] {
		entries[idx].IsDropped = true
	}
	return entries
}

// tieBreakerScores counts the finishes at rank 1..tieBreakRanks over the
// counting (non dropped) entries. Compared pairwise left to right, more
// high finishes win.
func tieBreakerScores(entries []StandingEntry) []int {
	scores := make([]int, tieBreakRanks)
	for _, e := range entries {
		if e.IsDropped || e.Rank < 1 || e.Rank > tieBreakRanks {
			continue
		}
		scores[e.Rank-1]++
	}
	return scores
}

// compareStandings is the total order of a season table: points, tie break
// vector, name, participant ID.
func compareStandings(a, b Standing) int {
	if c := cmp.Compare(b.FinalPoints, a.FinalPoints); c != 0 {
		return c
	}
	for i := 0; i < tieBreakRanks; i++ {
		if c := cmp.Compare(b.TieBreakerScores[i], a.TieBreakerScores[i]); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(a.ParticipantName, b.ParticipantName); c != 0 {
		return c
	}
	return cmp.Compare(a.ParticipantID, b.ParticipantID)
}
