package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsv-series/scoring/pkg/model"
)

func sampleSeason() *Season {
	return &Season{
		Participants: []model.Participant{
			{ID: "p1", FirstName: "Erika", LastName: "Mustermann",
				BirthYear: 1985, PerfClass: model.PerfClassB, Gender: model.GenderFemale},
		},
		Events: []model.Event{
			{ID: "e1", Name: "Auftakt", Date: "2025-04-12",
				EventType: model.EventTypeEZF, Finished: true, Season: 2025},
		},
		Results: []model.Result{
			{ID: "r1", EventID: "e1", ParticipantID: "p1", TimeSeconds: 1800},
		},
		Settings: model.DefaultSettings(),
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "season.json")
	season := sampleSeason()
	require.NoError(t, Save(path, season))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(season, loaded))
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "season.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestEffectiveSettings(t *testing.T) {
	season := sampleSeason()
	perSeason := model.DefaultSettings()
	perSeason.DropScores = 2
	season.SeasonSettings = map[string]*model.Settings{"2025": perSeason}

	assert.Equal(t, 2, season.EffectiveSettings(2025).DropScores)
	// falls back to the snapshot global settings
	assert.Equal(t, 1, season.EffectiveSettings(2024).DropScores)
	// and to the built-in default without a global block
	season.Settings = nil
	assert.Equal(t, 1, season.EffectiveSettings(2024).DropScores)
}

func TestSettingsOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	content := `
winnerPoints: [5, 3, 1]
dropScores: 2
handicapSettings:
  gender:
    female:
      enabled: true
      seconds: -90
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	settings, err := LoadSettingsOverride(path)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, 1}, settings.WinnerPoints)
	assert.Equal(t, 2, settings.DropScores)
	assert.Equal(t, -90, settings.HandicapSettings.Gender.Female.Seconds)
}

func TestSeasonLookups(t *testing.T) {
	season := sampleSeason()
	assert.NotNil(t, season.EventByID("e1"))
	assert.NotNil(t, season.EventByID("Auftakt"))
	assert.Nil(t, season.EventByID("nope"))
	assert.Len(t, season.ResultsForEvent("e1"), 1)
	assert.Empty(t, season.ResultsForEvent("e2"))
	assert.Equal(t, 2025, season.DefaultSeason(0))
	assert.Equal(t, 2024, season.DefaultSeason(2024))
}
