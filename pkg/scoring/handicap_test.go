package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rsv-series/scoring/pkg/model"
	"github.com/rsv-series/scoring/testsupport/basedata"
)

func disabledSettings() *model.Settings {
	s := model.DefaultSettings()
	s.TimeTrialBonuses.AeroBars.Enabled = false
	s.TimeTrialBonuses.TTEquipment.Enabled = false
	s.HandicapSettings.Gender.Female.Enabled = false
	s.HandicapSettings.PerfClass.Hobby.Enabled = false
	for i := range s.HandicapSettings.AgeBrackets {
		s.HandicapSettings.AgeBrackets[i].Enabled = false
	}
	return s
}

func TestCalculateHandicap_AllRulesDisabled(t *testing.T) {
	event := basedata.SampleEvent(model.EventTypeEZF)
	settings := disabledSettings()
	p := &model.Participant{
		ID: "p1", BirthYear: 1985,
		PerfClass: model.PerfClassB, Gender: model.GenderFemale,
	}
	res := &model.Result{ParticipantID: "p1", TimeSeconds: 1800,
		HasAeroBars: true, HasTTEquipment: true}

	assert.Equal(t, 0, CalculateHandicap(p, res, event, settings))
}

func TestCalculateHandicap_FemaleHobbySenior(t *testing.T) {
	// female bonus -120, bracket 40-49 -60, hobby class -45 => -225
	event := basedata.SampleEvent(model.EventTypeEZF)
	settings := model.DefaultSettings()
	p := &model.Participant{
		ID: "p1", BirthYear: 1985,
		PerfClass: model.PerfClassB, Gender: model.GenderFemale,
	}
	res := &model.Result{ParticipantID: "p1", TimeSeconds: 1800}

	handicap := CalculateHandicap(p, res, event, settings)
	assert.Equal(t, -225, handicap)
	assert.Equal(t, 1575, res.TimeSeconds+handicap)
}

func TestCalculateHandicap_MaterialPenalties(t *testing.T) {
	event := basedata.SampleEvent(model.EventTypeEZF)
	settings := disabledSettings()
	settings.TimeTrialBonuses.AeroBars = model.Rule{Enabled: true, Seconds: 30}
	settings.TimeTrialBonuses.TTEquipment = model.Rule{Enabled: true, Seconds: 30}
	p := basedata.SampleParticipant("p1")

	tests := []struct {
		name     string
		result   model.Result
		expected int
	}{
		{"no equipment", model.Result{}, 0},
		{"aero bars only", model.Result{HasAeroBars: true}, 30},
		{"full tt equipment", model.Result{HasAeroBars: true, HasTTEquipment: true}, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected,
				CalculateHandicap(p, &tt.result, event, settings))
		})
	}
}

func TestCalculateHandicap_AgeBracketBoundaries(t *testing.T) {
	event := basedata.SampleEvent(model.EventTypeEZF)
	settings := disabledSettings()
	settings.HandicapSettings.AgeBrackets = []model.AgeBracket{
		{MinAge: 40, MaxAge: 49, Enabled: true, Seconds: -60},
	}

	tests := []struct {
		birthYear int
		expected  int
	}{
		{1986, 0},   // age 39, below
		{1985, -60}, // age 40, inclusive lower bound
		{1976, -60}, // age 49, inclusive upper bound
		{1975, 0},   // age 50, above
	}
	for _, tt := range tests {
		p := basedata.SampleParticipant("p1")
		p.BirthYear = tt.birthYear
		assert.Equal(t, tt.expected,
			CalculateHandicap(p, &model.Result{}, event, settings),
			"birth year %d", tt.birthYear)
	}
}

func TestParticipantGroup(t *testing.T) {
	tests := []struct {
		perfClass model.PerfClass
		gender    model.Gender
		expected  model.GroupLabel
	}{
		{model.PerfClassA, model.GenderMale, model.GroupHobby},
		{model.PerfClassB, model.GenderMale, model.GroupHobby},
		{model.PerfClassC, model.GenderMale, model.GroupAmbitious},
		{model.PerfClassD, model.GenderMale, model.GroupAmbitious},
		// women always form their own group
		{model.PerfClassA, model.GenderFemale, model.GroupWomen},
		{model.PerfClassD, model.GenderFemale, model.GroupWomen},
	}
	for _, tt := range tests {
		p := &model.Participant{PerfClass: tt.perfClass, Gender: tt.gender}
		assert.Equal(t, tt.expected, ParticipantGroup(p))
	}
}
