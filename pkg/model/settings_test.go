package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsValidate(t *testing.T) {
	assert.NoError(t, DefaultSettings().Validate())

	overlapping := DefaultSettings()
	overlapping.HandicapSettings.AgeBrackets = []AgeBracket{
		{MinAge: 40, MaxAge: 49, Enabled: true, Seconds: -60},
		{MinAge: 45, MaxAge: 59, Enabled: true, Seconds: -90},
	}
	assert.ErrorIs(t, overlapping.Validate(), ErrInvalidSettings)

	// a disabled bracket may overlap
	overlapping.HandicapSettings.AgeBrackets[1].Enabled = false
	assert.NoError(t, overlapping.Validate())

	inverted := DefaultSettings()
	inverted.HandicapSettings.AgeBrackets = []AgeBracket{
		{MinAge: 50, MaxAge: 40, Enabled: true},
	}
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidSettings)
}

func TestResolveSettings(t *testing.T) {
	seasonSpecific := DefaultSettings()
	seasonSpecific.DropScores = 3
	global := DefaultSettings()
	global.DropScores = 2
	perSeason := map[int]*Settings{2025: seasonSpecific}

	assert.Equal(t, 3, ResolveSettings(2025, perSeason, global).DropScores)
	assert.Equal(t, 2, ResolveSettings(2024, perSeason, global).DropScores)
	assert.Equal(t, 1, ResolveSettings(2024, nil, nil).DropScores)
}

func TestSeasonClosed(t *testing.T) {
	s := DefaultSettings()
	s.ClosedSeasons = []int{2023, 2024}
	assert.True(t, s.SeasonClosed(2023))
	assert.False(t, s.SeasonClosed(2025))
}
