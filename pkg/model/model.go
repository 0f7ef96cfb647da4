package model

import (
	"fmt"
	"strings"

	"github.com/ohler55/ojg/oj"
)

// EventType discriminates the four supported disciplines.
type EventType string

const (
	EventTypeEZF      EventType = "EZF"      // individual time trial
	EventTypeBZF      EventType = "BZF"      // mountain time trial, scored like EZF
	EventTypeMZF      EventType = "MZF"      // team time trial
	EventTypeHandicap EventType = "Handicap" // mass start handicap race
)

type PerfClass string

const (
	PerfClassA PerfClass = "A"
	PerfClassB PerfClass = "B"
	PerfClassC PerfClass = "C"
	PerfClassD PerfClass = "D"
)

type Gender string

const (
	GenderMale   Gender = "m"
	GenderFemale Gender = "w"
)

// GroupLabel identifies one of the three independently ranked cohorts.
// The values are the published (German) table headings.
type GroupLabel string

const (
	GroupHobby     GroupLabel = "Hobby"
	GroupAmbitious GroupLabel = "Ambitioniert"
	GroupWomen     GroupLabel = "Frauen"
)

// AllGroups lists the groups in publication order.
var AllGroups = []GroupLabel{GroupAmbitious, GroupHobby, GroupWomen}

func ParseEventType(s string) (EventType, error) {
	switch EventType(s) {
	case EventTypeEZF, EventTypeBZF, EventTypeMZF, EventTypeHandicap:
		return EventType(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEventType, s)
}

func ParsePerfClass(s string) (PerfClass, error) {
	switch PerfClass(s) {
	case PerfClassA, PerfClassB, PerfClassC, PerfClassD:
		return PerfClass(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPerfClass, s)
}

func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case GenderMale, GenderFemale:
		return Gender(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGender, s)
}

//nolint:tagliatelle // client compatibility
type Participant struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Club        string    `json:"club,omitempty"`
	StartNumber string    `json:"startNumber,omitempty"`
	BirthYear   int       `json:"birthYear"`
	PerfClass   PerfClass `json:"perfClass"`
	Gender      Gender    `json:"gender"`
	IsRsvMember bool      `json:"isRsvMember"`
}

// Name returns the display name used in result and standing tables.
func (p *Participant) Name() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Age returns the participant's age in the given season year.
func (p *Participant) Age(season int) int {
	return season - p.BirthYear
}

//nolint:tagliatelle // client compatibility
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	Location  string    `json:"location,omitempty"`
	EventType EventType `json:"eventType"`
	Notes     string    `json:"notes,omitempty"`
	Finished  bool      `json:"finished"`
	Season    int       `json:"season"`
}

// GroupNotes decodes the per group free text notes which are stored as a
// JSON object keyed by group label. An empty notes field yields an empty map.
func (e *Event) GroupNotes() (map[GroupLabel]string, error) {
	ret := map[GroupLabel]string{}
	if strings.TrimSpace(e.Notes) == "" {
		return ret, nil
	}
	var raw map[string]string
	if err := oj.Unmarshal([]byte(e.Notes), &raw); err != nil {
		return nil, fmt.Errorf("event %s: malformed notes: %w", e.ID, err)
	}
	for k, v := range raw {
		ret[GroupLabel(k)] = v
	}
	return ret, nil
}

// Result is one participant's raw outcome for one event.
// TimeSeconds 0 means "no time recorded" (valid for handicap races and DNF).
// WinnerRank 0 means no manual top-3 marker was assigned.
//
//nolint:tagliatelle // client compatibility
type Result struct {
	ID             string `json:"id"`
	EventID        string `json:"eventId"`
	ParticipantID  string `json:"participantId"`
	TimeSeconds    int    `json:"timeSeconds,omitempty"`
	WinnerRank     int    `json:"winnerRank,omitempty"`
	FinisherGroup  int    `json:"finisherGroup,omitempty"`
	Dnf            bool   `json:"dnf"`
	Points         int    `json:"points"`
	HasAeroBars    bool   `json:"hasAeroBars,omitempty"`
	HasTTEquipment bool   `json:"hasTTEquipment,omitempty"`
}

//nolint:tagliatelle // client compatibility
type Team struct {
	ID      string `json:"id"`
	EventID string `json:"eventId"`
	Name    string `json:"name"`
}

// PenaltyMinus2 is persisted for future penalty rules but has no effect
// on the team time selection yet.
//
//nolint:tagliatelle // client compatibility
type TeamMember struct {
	ID            string `json:"id"`
	TeamID        string `json:"teamId"`
	ParticipantID string `json:"participantId"`
	PenaltyMinus2 bool   `json:"penaltyMinus2,omitempty"`
}
