package model

import (
	"fmt"
	"slices"
)

// Rule is a single on/off handicap rule. Seconds are negative for a time
// bonus and positive for a penalty.
type Rule struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Seconds int  `json:"seconds" yaml:"seconds"`
}

// AgeBracket grants Seconds to participants whose age in the event season
// falls within [MinAge, MaxAge] inclusive.
//
//nolint:tagliatelle // client compatibility
type AgeBracket struct {
	MinAge  int  `json:"minAge" yaml:"minAge"`
	MaxAge  int  `json:"maxAge" yaml:"maxAge"`
	Enabled bool `json:"enabled" yaml:"enabled"`
	Seconds int  `json:"seconds" yaml:"seconds"`
}

//nolint:tagliatelle // client compatibility
type MaterialBonuses struct {
	AeroBars    Rule `json:"aeroBars" yaml:"aeroBars"`
	TTEquipment Rule `json:"ttEquipment" yaml:"ttEquipment"`
}

type GenderRules struct {
	Female Rule `json:"female" yaml:"female"`
}

type PerfClassRules struct {
	Hobby Rule `json:"hobby" yaml:"hobby"`
}

//nolint:tagliatelle // client compatibility
type HandicapRules struct {
	Gender      GenderRules    `json:"gender" yaml:"gender"`
	AgeBrackets []AgeBracket   `json:"ageBrackets" yaml:"ageBrackets"`
	PerfClass   PerfClassRules `json:"perfClass" yaml:"perfClass"`
}

// BasePoints holds the handicap race base points per performance class.
type BasePoints struct {
	A int `json:"A" yaml:"A"`
	B int `json:"B" yaml:"B"`
	C int `json:"C" yaml:"C"`
	D int `json:"D" yaml:"D"`
}

// ForClass returns the base points of a performance class. Unknown classes
// yield zero; enum validation happens before scoring.
func (b BasePoints) ForClass(pc PerfClass) int {
	switch pc {
	case PerfClassA:
		return b.A
	case PerfClassB:
		return b.B
	case PerfClassC:
		return b.C
	case PerfClassD:
		return b.D
	default:
		return 0
	}
}

//nolint:tagliatelle // client compatibility
type GroupMapping struct {
	Hobby     PerfClass `json:"hobby" yaml:"hobby"`
	Ambitious PerfClass `json:"ambitious" yaml:"ambitious"`
}

// Settings is the versioned scoring configuration. One instance exists per
// season with a global fallback.
//
//nolint:tagliatelle // client compatibility
type Settings struct {
	TimeTrialBonuses    MaterialBonuses `json:"timeTrialBonuses" yaml:"timeTrialBonuses"`
	WinnerPoints        []int           `json:"winnerPoints" yaml:"winnerPoints"`
	HandicapBasePoints  BasePoints      `json:"handicapBasePoints" yaml:"handicapBasePoints"`
	DropScores          int             `json:"dropScores" yaml:"dropScores"`
	ClosedSeasons       []int           `json:"closedSeasons" yaml:"closedSeasons"`
	DefaultGroupMapping GroupMapping    `json:"defaultGroupMapping" yaml:"defaultGroupMapping"`
	HandicapSettings    HandicapRules   `json:"handicapSettings" yaml:"handicapSettings"`
}

// DefaultSettings returns the built-in configuration matching the series
// regulations. It is the last element of the resolution chain.
func DefaultSettings() *Settings {
	return &Settings{
		TimeTrialBonuses: MaterialBonuses{
			AeroBars:    Rule{Enabled: true, Seconds: 30},
			TTEquipment: Rule{Enabled: true, Seconds: 30},
		},
		WinnerPoints:       []int{3, 2, 1},
		HandicapBasePoints: BasePoints{A: 5, B: 6, C: 7, D: 8},
		DropScores:         1,
		ClosedSeasons:      []int{},
		DefaultGroupMapping: GroupMapping{
			Hobby:     PerfClassB,
			Ambitious: PerfClassC,
		},
		HandicapSettings: HandicapRules{
			Gender: GenderRules{
				Female: Rule{Enabled: true, Seconds: -120},
			},
			AgeBrackets: []AgeBracket{
				{MinAge: 0, MaxAge: 18, Enabled: true, Seconds: -90},
				{MinAge: 40, MaxAge: 49, Enabled: true, Seconds: -60},
				{MinAge: 50, MaxAge: 59, Enabled: true, Seconds: -90},
				{MinAge: 60, MaxAge: 999, Enabled: true, Seconds: -120},
			},
			PerfClass: PerfClassRules{
				Hobby: Rule{Enabled: true, Seconds: -45},
			},
		},
	}
}

// Validate rejects settings whose enabled age brackets overlap. Overlaps
// would make the age bonus ambiguous, so they are treated as a
// configuration error instead of being summed.
func (s *Settings) Validate() error {
	enabled := make([]AgeBracket, 0, len(s.HandicapSettings.AgeBrackets))
	for _, b := range s.HandicapSettings.AgeBrackets {
		if !b.Enabled {
			continue
		}
		if b.MinAge > b.MaxAge {
			return fmt.Errorf("%w: age bracket %d-%d is inverted",
				ErrInvalidSettings, b.MinAge, b.MaxAge)
		}
		enabled = append(enabled, b)
	}
	slices.SortFunc(enabled, func(a, b AgeBracket) int { return a.MinAge - b.MinAge })
	for i := 1; i < len(enabled); i++ {
		if enabled[i].MinAge <= enabled[i-1].MaxAge {
			return fmt.Errorf("%w: age brackets %d-%d and %d-%d overlap",
				ErrInvalidSettings,
				enabled[i-1].MinAge, enabled[i-1].MaxAge,
				enabled[i].MinAge, enabled[i].MaxAge)
		}
	}
	return nil
}

// SeasonClosed reports whether result mutation for the season is locked.
// This gates callers only, never the computation itself.
func (s *Settings) SeasonClosed(season int) bool {
	return slices.Contains(s.ClosedSeasons, season)
}

// ResolveSettings returns the effective settings for a season following the
// chain season specific -> global -> built-in default.
func ResolveSettings(season int, perSeason map[int]*Settings, global *Settings) *Settings {
	if s, ok := perSeason[season]; ok && s != nil {
		return s
	}
	if global != nil {
		return global
	}
	return DefaultSettings()
}
