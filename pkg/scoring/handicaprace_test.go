package scoring

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsv-series/scoring/pkg/model"
	"github.com/rsv-series/scoring/testsupport/basedata"
)

func TestHandicapRace_BasePointsPerClassAndGroup(t *testing.T) {
	event := basedata.SampleEvent(model.EventTypeHandicap)
	settings := basedata.SampleSettings()

	tests := []struct {
		name          string
		perfClass     model.PerfClass
		finisherGroup int
		expected      int
	}{
		{"class D group 1", model.PerfClassD, 1, 8},
		{"class D group 2", model.PerfClassD, 2, 7},
		{"class A group 1", model.PerfClassA, 1, 5},
		{"class A group 3", model.PerfClassA, 3, 3},
		{"missing group means group 1", model.PerfClassC, 0, 7},
		{"points never negative", model.PerfClassA, 9, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := basedata.SampleParticipant("p01")
			p.PerfClass = tt.perfClass
			results := []model.Result{{
				ID: "r1", EventID: event.ID, ParticipantID: "p01",
				FinisherGroup: tt.finisherGroup,
			}}
			scored, err := CalculatePointsForEvent(
				event, results, []model.Participant{*p}, nil, nil, settings)
			require.NoError(t, err)
			require.Len(t, scored, 1)
			assert.Equal(t, tt.expected, scored[0].Points)
		})
	}
}

func TestHandicapRace_GroupIsolation(t *testing.T) {
	// changing a women's result must not affect the men's groups
	event := basedata.SampleEvent(model.EventTypeHandicap)
	settings := basedata.SampleSettings()

	hobby := basedata.SampleParticipant("p01")
	hobby.PerfClass = model.PerfClassB
	ambitious := basedata.SampleParticipant("p02")
	woman := basedata.SampleParticipant("p03")
	woman.Gender = model.GenderFemale
	participants := []model.Participant{*hobby, *ambitious, *woman}

	results := []model.Result{
		{ID: "r1", EventID: event.ID, ParticipantID: "p01", FinisherGroup: 1},
		{ID: "r2", EventID: event.ID, ParticipantID: "p02", FinisherGroup: 1},
		{ID: "r3", EventID: event.ID, ParticipantID: "p03", FinisherGroup: 1},
	}
	base, err := CalculatePointsForEvent(
		event, results, participants, nil, nil, settings)
	require.NoError(t, err)

	// move the woman to a later pursuit group and add a winner rank
	results[2].FinisherGroup = 3
	results[2].WinnerRank = 1
	changed, err := CalculatePointsForEvent(
		event, results, participants, nil, nil, settings)
	require.NoError(t, err)

	menOnly := func(in []ScoredResult) []ScoredResult {
		out := []ScoredResult{}
		for _, sr := range in {
			if sr.Group != model.GroupWomen {
				out = append(out, sr)
			}
		}
		return out
	}
	assert.Empty(t, cmp.Diff(menOnly(base), menOnly(changed)))
}

func TestHandicapRace_WinnerRankOrdering(t *testing.T) {
	event := basedata.SampleEvent(model.EventTypeHandicap)
	settings := basedata.SampleSettings()
	participants := basedata.SampleField(4)
	// p04 has the most points but no winner rank; p02/p01 hold markers
	results := []model.Result{
		{ID: "r1", EventID: event.ID, ParticipantID: "p01", FinisherGroup: 2, WinnerRank: 2},
		{ID: "r2", EventID: event.ID, ParticipantID: "p02", FinisherGroup: 3, WinnerRank: 1},
		{ID: "r3", EventID: event.ID, ParticipantID: "p03", FinisherGroup: 2},
		{ID: "r4", EventID: event.ID, ParticipantID: "p04", FinisherGroup: 1},
	}

	scored, err := CalculatePointsForEvent(
		event, results, participants, nil, nil, settings)
	require.NoError(t, err)
	require.Len(t, scored, 4)

	// marker holders first by winner rank, then the rest by points
	assert.Equal(t, "p02", scored[0].ParticipantID)
	assert.Equal(t, 1, scored[0].Rank)
	assert.Equal(t, "p01", scored[1].ParticipantID)
	assert.Equal(t, 2, scored[1].Rank)
	assert.Equal(t, "p04", scored[2].ParticipantID)
	assert.Equal(t, "p03", scored[3].ParticipantID)
}

func TestHandicapRace_DnfScoresZero(t *testing.T) {
	event := basedata.SampleEvent(model.EventTypeHandicap)
	settings := basedata.SampleSettings()
	participants := basedata.SampleField(2)
	results := []model.Result{
		{ID: "r1", EventID: event.ID, ParticipantID: "p01", FinisherGroup: 1},
		{ID: "r2", EventID: event.ID, ParticipantID: "p02", Dnf: true},
	}

	scored, err := CalculatePointsForEvent(
		event, results, participants, nil, nil, settings)
	require.NoError(t, err)
	require.Len(t, scored, 2)
	assert.Equal(t, "p01", scored[0].ParticipantID)
	assert.True(t, scored[1].Dnf)
	assert.Equal(t, 0, scored[1].Points)
	assert.Equal(t, 0, scored[1].Rank)
}
