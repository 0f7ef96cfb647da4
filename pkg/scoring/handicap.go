package scoring

import "github.com/rsv-series/scoring/pkg/model"

// CalculateHandicap computes the signed time adjustment in seconds which is
// added to the raw time for ranking in time trial style events. Bonuses are
// negative, material penalties positive. Disabled rules contribute nothing,
// so with every rule switched off the result is exactly 0.
//
// Handicap races never use this value, they are scored by group placement.
func CalculateHandicap(
	participant *model.Participant,
	result *model.Result,
	event *model.Event,
	settings *model.Settings,
) int {
	total := 0
	rules := settings.HandicapSettings

	age := participant.Age(event.Season)
	for i := range rules.AgeBrackets {
		b := &rules.AgeBrackets[i]
		if b.Enabled && age >= b.MinAge && age <= b.MaxAge {
			total += b.Seconds
			// brackets are validated to be non overlapping
			break
		}
	}

	if rules.Gender.Female.Enabled && participant.Gender == model.GenderFemale {
		total += rules.Gender.Female.Seconds
	}

	if rules.PerfClass.Hobby.Enabled {
		switch participant.PerfClass {
		case model.PerfClassA, model.PerfClassB:
			total += rules.PerfClass.Hobby.Seconds
		}
	}

	if result.HasAeroBars && settings.TimeTrialBonuses.AeroBars.Enabled {
		total += settings.TimeTrialBonuses.AeroBars.Seconds
	}
	if result.HasTTEquipment && settings.TimeTrialBonuses.TTEquipment.Enabled {
		total += settings.TimeTrialBonuses.TTEquipment.Seconds
	}

	return total
}
