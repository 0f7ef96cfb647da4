// Package basedata provides shared sample data for package tests.
package basedata

import (
	"fmt"

	"github.com/rsv-series/scoring/pkg/model"
)

// SampleSettings returns the production default settings.
func SampleSettings() *model.Settings {
	return model.DefaultSettings()
}

// SampleEvent returns a finished event of the given type in season 2025.
func SampleEvent(eventType model.EventType) *model.Event {
	return &model.Event{
		ID:        "evt-1",
		Name:      "testevent",
		Date:      "2025-05-01",
		EventType: eventType,
		Finished:  true,
		Season:    2025,
	}
}

// SampleParticipant returns a male class C rider born 1990 with the given id.
func SampleParticipant(id string) *model.Participant {
	return &model.Participant{
		ID:        id,
		FirstName: "Rider",
		LastName:  id,
		BirthYear: 1990,
		PerfClass: model.PerfClassC,
		Gender:    model.GenderMale,
	}
}

// SampleField returns n male class C riders born 1990 named Rider p01..pNN
// so that name order follows id order.
func SampleField(n int) []model.Participant {
	ret := make([]model.Participant, 0, n)
	for i := 1; i <= n; i++ {
		ret = append(ret, *SampleParticipant(fmt.Sprintf("p%02d", i)))
	}
	return ret
}
