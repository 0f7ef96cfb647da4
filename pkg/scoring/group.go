package scoring

import "github.com/rsv-series/scoring/pkg/model"

// ParticipantGroup maps a participant to the competition group the series
// ranks them in. Women form their own group regardless of performance
// class, A/B men ride in the Hobby group, C/D men in the Ambitious group.
func ParticipantGroup(p *model.Participant) model.GroupLabel {
	if p.Gender == model.GenderFemale {
		return model.GroupWomen
	}
	switch p.PerfClass {
	case model.PerfClassA, model.PerfClassB:
		return model.GroupHobby
	default:
		return model.GroupAmbitious
	}
}
