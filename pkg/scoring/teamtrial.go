package scoring

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/rsv-series/scoring/pkg/model"
)

// TeamScore is the computed outcome of one team in a team time trial.
//
//nolint:tagliatelle // client compatibility
type TeamScore struct {
	TeamID          string `json:"teamId"`
	Name            string `json:"name"`
	FinisherCount   int    `json:"finisherCount"`
	BaseTime        int    `json:"baseTime,omitempty"`
	HandicapSeconds int    `json:"handicapSeconds"`
	AdjustedTime    int    `json:"adjustedTime"`
	Rank            int    `json:"rank,omitempty"`
	Points          int    `json:"points"`
}

// Ranked reports whether the team had enough valid finishers to be timed.
func (t *TeamScore) Ranked() bool {
	return t.AdjustedTime < TimeUnranked
}

// CalculateTeamScores ranks the teams of a team time trial. The team base
// time is the second slowest valid finisher's raw time, so the slowest
// rider of the team does not count ("all but one" timing). A team needs at
// least two valid finishers to receive a time at all; teams below that stay
// in the output unranked. Every member's individual handicap is added to
// the base time, including members who did not finish.
func CalculateTeamScores(
	event *model.Event,
	results []model.Result,
	participants []model.Participant,
	teams []model.Team,
	teamMembers []model.TeamMember,
	settings *model.Settings,
) ([]TeamScore, error) {
	s := newEventScorer(event, participants, settings)
	return s.teamScores(results, teams, teamMembers)
}

func (s *eventScorer) teamScores(
	results []model.Result,
	teams []model.Team,
	teamMembers []model.TeamMember,
) ([]TeamScore, error) {
	resultByParticipant := make(map[string]*model.Result, len(results))
	for i := range results {
		resultByParticipant[results[i].ParticipantID] = &results[i]
	}
	membersByTeam := lo.GroupBy(teamMembers, func(m model.TeamMember) string {
		return m.TeamID
	})

	scores := make([]TeamScore, 0, len(teams))
	// manual top-3 marker of a team, taken from its riders' results
	winnerRankByTeam := make(map[string]int, len(teams))
	for i := range teams {
		team := &teams[i]
		score := TeamScore{TeamID: team.ID, Name: team.Name, AdjustedTime: TimeUnranked}

		finisherTimes := make([]int, 0)
		handicapTotal := 0
		for _, member := range membersByTeam[team.ID] {
			res := resultByParticipant[member.ParticipantID]
			if res == nil {
				continue
			}
			p, err := s.participant(member.ParticipantID)
			if err != nil {
				return nil, err
			}
			if p != nil {
				handicapTotal += CalculateHandicap(p, res, s.event, s.settings)
			}
			if !res.Dnf && res.TimeSeconds > 0 {
				finisherTimes = append(finisherTimes, res.TimeSeconds)
				wr := winnerRankByTeam[team.ID]
				if res.WinnerRank > 0 && (wr == 0 || res.WinnerRank < wr) {
					winnerRankByTeam[team.ID] = res.WinnerRank
				}
			}
		}

		score.FinisherCount = len(finisherTimes)
		score.HandicapSeconds = handicapTotal
		if len(finisherTimes) >= 2 {
			slices.Sort(finisherTimes)
			score.BaseTime = finisherTimes[len(finisherTimes)-2]
			score.AdjustedTime = score.BaseTime + handicapTotal
		}
		scores = append(scores, score)
	}

	slices.SortFunc(scores, func(a, b TeamScore) int {
		if c := cmp.Compare(a.AdjustedTime, b.AdjustedTime); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	// competition ranking: tied teams share a rank
	rank := 1
	for i := range scores {
		if !scores[i].Ranked() {
			continue
		}
		if i > 0 && scores[i].AdjustedTime > scores[i-1].AdjustedTime {
			rank = i + 1
		}
		scores[i].Rank = rank
		scores[i].Points = placementPoints(rank) +
			winnerBonus(winnerRankByTeam[scores[i].TeamID], s.settings)
	}

	return scores, nil
}

// scoreTeamTimeTrial projects the team ranking back onto the individual
// results: every finishing member carries the team's points and rank, DNF
// members and riders without a team score zero.
func (s *eventScorer) scoreTeamTimeTrial(
	results []model.Result,
	teams []model.Team,
	teamMembers []model.TeamMember,
) ([]ScoredResult, error) {
	scores, err := s.teamScores(results, teams, teamMembers)
	if err != nil {
		return nil, err
	}
	scoreByTeam := make(map[string]*TeamScore, len(scores))
	for i := range scores {
		scoreByTeam[scores[i].TeamID] = &scores[i]
	}
	teamByParticipant := make(map[string]string, len(teamMembers))
	for _, m := range teamMembers {
		teamByParticipant[m.ParticipantID] = m.TeamID
	}

	ret := make([]ScoredResult, 0, len(results))
	for i := range results {
		res := results[i]
		res.Points = 0
		sr := ScoredResult{Result: res}
		p, err := s.participant(res.ParticipantID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			sr.ParticipantName = p.Name()
			sr.Group = ParticipantGroup(p)
		}
		if score := scoreByTeam[teamByParticipant[res.ParticipantID]]; score != nil {
			sr.TeamID = score.TeamID
			sr.TeamName = score.Name
			if !res.Dnf {
				sr.Points = score.Points
				sr.Rank = score.Rank
				if score.Ranked() {
					sr.AdjustedTime = score.AdjustedTime
				}
			}
		}
		ret = append(ret, sr)
	}
	return ret, nil
}
