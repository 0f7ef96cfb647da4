// Package snapshot reads and writes the season snapshot files the CLI
// feeds into the scoring engine. The engine itself never touches files.
package snapshot

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"

	"github.com/rsv-series/scoring/pkg/model"
)

// Season is a consistent snapshot of everything the engine consumes.
// SeasonSettings is keyed by year (JSON object keys are strings).
//
//nolint:tagliatelle // client compatibility
type Season struct {
	Participants   []model.Participant        `json:"participants"`
	Events         []model.Event              `json:"events"`
	Results        []model.Result             `json:"results"`
	Teams          []model.Team               `json:"teams,omitempty"`
	TeamMembers    []model.TeamMember         `json:"teamMembers,omitempty"`
	Settings       *model.Settings            `json:"settings,omitempty"`
	SeasonSettings map[string]*model.Settings `json:"seasonSettings,omitempty"`
}

// Load reads a snapshot file.
func Load(path string) (*Season, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var season Season
	if err := oj.Unmarshal(data, &season); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return &season, nil
}

// Save writes a snapshot file with stable, indented output.
func Save(path string, season *Season) error {
	data, err := oj.Marshal(season, 2)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// LoadSettingsOverride parses a YAML settings file used to override the
// snapshot's configuration from the command line.
func LoadSettingsOverride(path string) (*model.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	var settings model.Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return &settings, nil
}

// DefaultSeason returns the season the snapshot covers: the explicit
// request wins, otherwise the first event's season.
func (s *Season) DefaultSeason(requested int) int {
	if requested != 0 {
		return requested
	}
	if len(s.Events) > 0 {
		return s.Events[0].Season
	}
	return 0
}

// EffectiveSettings resolves the settings for a season through the chain
// season specific -> snapshot global -> built-in default.
func (s *Season) EffectiveSettings(season int) *model.Settings {
	perSeason := make(map[int]*model.Settings, len(s.SeasonSettings))
	for k, v := range s.SeasonSettings {
		if year, err := strconv.Atoi(k); err == nil {
			perSeason[year] = v
		}
	}
	return model.ResolveSettings(season, perSeason, s.Settings)
}

// EventByID returns the event with the given ID or name.
func (s *Season) EventByID(idOrName string) *model.Event {
	for i := range s.Events {
		if s.Events[i].ID == idOrName || s.Events[i].Name == idOrName {
			return &s.Events[i]
		}
	}
	return nil
}

// ResultsForEvent filters the snapshot results for one event.
func (s *Season) ResultsForEvent(eventID string) []model.Result {
	ret := make([]model.Result, 0)
	for _, r := range s.Results {
		if r.EventID == eventID {
			ret = append(ret, r)
		}
	}
	return ret
}

// TeamsForEvent filters the snapshot teams for one event.
func (s *Season) TeamsForEvent(eventID string) []model.Team {
	ret := make([]model.Team, 0)
	for _, t := range s.Teams {
		if t.EventID == eventID {
			ret = append(ret, t)
		}
	}
	return ret
}
