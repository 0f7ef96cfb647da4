package scoring

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/rsv-series/scoring/pkg/model"
)

// scoreHandicapRace handles mass start handicap races. No time adjustment
// is involved; each of the three groups is scored in isolation. Base points
// depend on the rider's performance class, reduced by one point per pursuit
// group behind the first (floored at zero). The display rank puts manually
// marked winners first, then sorts by points.
func (s *eventScorer) scoreHandicapRace(results []model.Result) ([]ScoredResult, error) {
	scored := make([]ScoredResult, 0, len(results))
	for i := range results {
		res := results[i]
		res.Points = 0
		p, err := s.participant(res.ParticipantID)
		if err != nil {
			return nil, err
		}
		sr := ScoredResult{Result: res}
		if p == nil {
			scored = append(scored, sr)
			continue
		}
		sr.ParticipantName = p.Name()
		sr.Group = ParticipantGroup(p)
		if !res.Dnf {
			sr.Points = s.handicapRacePoints(p, &res)
		}
		scored = append(scored, sr)
	}

	grouped := lo.GroupBy(scored, func(sr ScoredResult) model.GroupLabel {
		return sr.Group
	})

	ret := make([]ScoredResult, 0, len(scored))
	for _, group := range model.AllGroups {
		members := grouped[group]
		finishers := lo.Filter(members, func(sr ScoredResult, _ int) bool {
			return !sr.Dnf
		})
		dnfs := lo.Filter(members, func(sr ScoredResult, _ int) bool {
			return sr.Dnf
		})

		slices.SortFunc(finishers, compareHandicapRace)
		for i := range finishers {
			finishers[i].Rank = i + 1
		}
		ret = append(ret, finishers...)
		ret = append(ret, dnfs...)
	}
	// results without a known participant cannot be grouped or ranked
	ret = append(ret, grouped[""]...)
	return ret, nil
}

// handicapRacePoints: base points per performance class, one point less for
// every pursuit group behind the first, never below zero. A missing
// finisher group means the rider started in group 1.
func (s *eventScorer) handicapRacePoints(p *model.Participant, res *model.Result) int {
	base := s.settings.HandicapBasePoints.ForClass(p.PerfClass)
	group := res.FinisherGroup
	if group < 1 {
		group = 1
	}
	pts := base - (group - 1)
	if pts < 0 {
		pts = 0
	}
	return pts + winnerBonus(res.WinnerRank, s.settings)
}

// compareHandicapRace orders finishers for display: riders holding a manual
// winner rank outrank all others, among them the lower winner rank wins,
// everyone else sorts by points, name and ID.
func compareHandicapRace(a, b ScoredResult) int {
	aMarked, bMarked := a.WinnerRank > 0, b.WinnerRank > 0
	if aMarked != bMarked {
		if aMarked {
			return -1
		}
		return 1
	}
	if aMarked && bMarked {
		if c := cmp.Compare(a.WinnerRank, b.WinnerRank); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(b.Points, a.Points); c != 0 {
		return c
	}
	if c := cmp.Compare(a.ParticipantName, b.ParticipantName); c != 0 {
		return c
	}
	return cmp.Compare(a.ParticipantID, b.ParticipantID)
}
