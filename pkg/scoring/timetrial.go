package scoring

import (
	"cmp"
	"slices"

	"github.com/rsv-series/scoring/pkg/model"
)

// scoreTimeTrial handles EZF and BZF events. Every non-DNF rider is ranked
// by adjusted time (raw time plus handicap); points follow the placement
// bands with an optional winner bonus on top. DNF riders are appended
// unranked with zero points.
func (s *eventScorer) scoreTimeTrial(results []model.Result) ([]ScoredResult, error) {
	finishers := make([]ScoredResult, 0, len(results))
	unranked := make([]ScoredResult, 0)

	for i := range results {
		res := results[i]
		res.Points = 0
		p, err := s.participant(res.ParticipantID)
		if err != nil {
			return nil, err
		}
		if res.Dnf || p == nil {
			sr := ScoredResult{Result: res}
			if p != nil {
				sr.ParticipantName = p.Name()
				sr.Group = ParticipantGroup(p)
			}
			unranked = append(unranked, sr)
			continue
		}
		handicap := CalculateHandicap(p, &res, s.event, s.settings)
		finishers = append(finishers, ScoredResult{
			Result:          res,
			ParticipantName: p.Name(),
			Group:           ParticipantGroup(p),
			AdjustedTime:    res.TimeSeconds + handicap,
		})
	}

	slices.SortFunc(finishers, func(a, b ScoredResult) int {
		if c := cmp.Compare(a.AdjustedTime, b.AdjustedTime); c != 0 {
			return c
		}
		if c := cmp.Compare(a.ParticipantName, b.ParticipantName); c != 0 {
			return c
		}
		return cmp.Compare(a.ParticipantID, b.ParticipantID)
	})

	for i := range finishers {
		finishers[i].Rank = i + 1
		finishers[i].Points = placementPoints(i+1) +
			winnerBonus(finishers[i].WinnerRank, s.settings)
	}

	return append(finishers, unranked...), nil
}
