package scoring

import (
	"fmt"
	"math"

	"github.com/rsv-series/scoring/pkg/model"
)

// TimeUnranked marks an adjusted time that must sort behind every real
// time (teams with fewer than two valid finishers).
const TimeUnranked = math.MaxInt32

// ScoredResult is a raw result augmented with the computed points and the
// transient ranking data used to derive them.
//
//nolint:tagliatelle // client compatibility
type ScoredResult struct {
	model.Result

	ParticipantName string           `json:"participantName,omitempty"`
	Group           model.GroupLabel `json:"group,omitempty"`
	Rank            int              `json:"rank,omitempty"`
	AdjustedTime    int              `json:"adjustedTime,omitempty"`
	TeamID          string           `json:"teamId,omitempty"`
	TeamName        string           `json:"teamName,omitempty"`
}

type eventScorer struct {
	event        *model.Event
	settings     *model.Settings
	participants map[string]*model.Participant
}

// CalculatePointsForEvent converts the raw results of one event into scored
// results according to the event's discipline. Callers invoke this for
// finished events only; results of unfinished events score zero by
// definition and that zeroing is the caller's concern.
//
// The inputs are never mutated.
func CalculatePointsForEvent(
	event *model.Event,
	results []model.Result,
	participants []model.Participant,
	teams []model.Team,
	teamMembers []model.TeamMember,
	settings *model.Settings,
) ([]ScoredResult, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	s := newEventScorer(event, participants, settings)
	switch event.EventType {
	case model.EventTypeEZF, model.EventTypeBZF:
		return s.scoreTimeTrial(results)
	case model.EventTypeMZF:
		return s.scoreTeamTimeTrial(results, teams, teamMembers)
	case model.EventTypeHandicap:
		return s.scoreHandicapRace(results)
	default:
		return nil, fmt.Errorf("event %s: %w: %q",
			event.ID, model.ErrUnknownEventType, event.EventType)
	}
}

func newEventScorer(
	event *model.Event,
	participants []model.Participant,
	settings *model.Settings,
) *eventScorer {
	lookup := make(map[string]*model.Participant, len(participants))
	for i := range participants {
		lookup[participants[i].ID] = &participants[i]
	}
	return &eventScorer{event: event, settings: settings, participants: lookup}
}

// participant resolves a result's participant. A missing participant is not
// an error (the result simply cannot be ranked), corrupted enum values are.
func (s *eventScorer) participant(id string) (*model.Participant, error) {
	p, ok := s.participants[id]
	if !ok {
		return nil, nil
	}
	if _, err := model.ParsePerfClass(string(p.PerfClass)); err != nil {
		return nil, fmt.Errorf("participant %s: %w", p.ID, err)
	}
	if _, err := model.ParseGender(string(p.Gender)); err != nil {
		return nil, fmt.Errorf("participant %s: %w", p.ID, err)
	}
	return p, nil
}

// placementPoints returns the banded base points for a rank.
func placementPoints(rank int) int {
	switch {
	case rank <= 10:
		return 8
	case rank <= 20:
		return 7
	case rank <= 30:
		return 6
	default:
		return 5
	}
}

// winnerBonus returns the manual top-3 bonus. A winner rank outside the
// configured table yields no bonus rather than an error.
func winnerBonus(winnerRank int, settings *model.Settings) int {
	if winnerRank >= 1 && winnerRank <= len(settings.WinnerPoints) {
		return settings.WinnerPoints[winnerRank-1]
	}
	return 0
}
