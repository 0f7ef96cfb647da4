package seed

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rsv-series/scoring/log"
	"github.com/rsv-series/scoring/pkg/config"
	"github.com/rsv-series/scoring/pkg/model"
	"github.com/rsv-series/scoring/pkg/snapshot"
)

var (
	numParticipants int
	seedValue       int64
	seasonYear      int
)

// NewSeedCmd creates a snapshot with generated sample data, one event per
// discipline. Useful for trying out the scoring commands without real data.
func NewSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "write a snapshot with generated sample data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seed(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&numParticipants, "participants", 24,
		"number of participants to generate")
	cmd.Flags().Int64Var(&seedValue, "seed", 1,
		"random seed for reproducible data")
	cmd.Flags().IntVar(&seasonYear, "year", 2025,
		"season year for the generated events")
	return cmd
}

//nolint:funlen,gosec // sample data generation, weak randomness is fine
func seed(ctx context.Context) error {
	logger := log.GetFromContext(ctx).Named("seed")
	rnd := rand.New(rand.NewSource(seedValue))

	firstNames := []string{
		"Andreas", "Birgit", "Claudia", "Dirk", "Elke", "Frank", "Gabi",
		"Heiko", "Ines", "Jürgen", "Katrin", "Lutz", "Martina", "Norbert",
		"Olaf", "Petra", "Ralf", "Sabine", "Thomas", "Uwe",
	}
	lastNames := []string{
		"Bauer", "Fischer", "Hoffmann", "Koch", "Krüger", "Lehmann",
		"Meyer", "Neumann", "Richter", "Schmidt", "Schulz", "Wagner",
	}
	classes := []model.PerfClass{
		model.PerfClassA, model.PerfClassB, model.PerfClassC, model.PerfClassD,
	}

	season := &snapshot.Season{Settings: model.DefaultSettings()}
	for i := 0; i < numParticipants; i++ {
		gender := model.GenderMale
		if rnd.Intn(4) == 0 {
			gender = model.GenderFemale
		}
		season.Participants = append(season.Participants, model.Participant{
			ID:          uuid.NewString(),
			FirstName:   firstNames[rnd.Intn(len(firstNames))],
			LastName:    lastNames[rnd.Intn(len(lastNames))],
			BirthYear:   seasonYear - (18 + rnd.Intn(50)),
			PerfClass:   classes[rnd.Intn(len(classes))],
			Gender:      gender,
			IsRsvMember: rnd.Intn(3) > 0,
		})
	}

	specs := []struct {
		name      string
		date      string
		eventType model.EventType
	}{
		{"Auftaktzeitfahren", fmt.Sprintf("%d-04-12", seasonYear), model.EventTypeEZF},
		{"Bergzeitfahren", fmt.Sprintf("%d-05-24", seasonYear), model.EventTypeBZF},
		{"Mannschaftszeitfahren", fmt.Sprintf("%d-06-14", seasonYear), model.EventTypeMZF},
		{"Handicaprennen", fmt.Sprintf("%d-08-09", seasonYear), model.EventTypeHandicap},
	}
	for _, spec := range specs {
		event := model.Event{
			ID:        uuid.NewString(),
			Name:      spec.name,
			Date:      spec.date,
			EventType: spec.eventType,
			Finished:  true,
			Season:    seasonYear,
		}
		season.Events = append(season.Events, event)
		seedResults(rnd, season, &event)
	}

	if err := snapshot.Save(config.SnapshotFile, season); err != nil {
		return err
	}
	logger.Info("snapshot written",
		log.String("file", config.SnapshotFile),
		log.Int("participants", len(season.Participants)),
		log.Int("events", len(season.Events)),
		log.Int("results", len(season.Results)))
	return nil
}

//nolint:gosec // sample data generation
func seedResults(rnd *rand.Rand, season *snapshot.Season, event *model.Event) {
	if event.EventType == model.EventTypeMZF {
		seedTeams(rnd, season, event)
		return
	}
	for _, p := range season.Participants {
		res := model.Result{
			ID:            uuid.NewString(),
			EventID:       event.ID,
			ParticipantID: p.ID,
			Dnf:           rnd.Intn(15) == 0,
		}
		if !res.Dnf {
			if event.EventType == model.EventTypeHandicap {
				res.FinisherGroup = 1 + rnd.Intn(3)
			} else {
				res.TimeSeconds = 1500 + rnd.Intn(900)
				res.HasAeroBars = rnd.Intn(5) == 0
			}
		}
		season.Results = append(season.Results, res)
	}
}

//nolint:gosec // sample data generation
func seedTeams(rnd *rand.Rand, season *snapshot.Season, event *model.Event) {
	teamSize := 4
	for t := 0; t*teamSize+teamSize <= len(season.Participants); t++ {
		team := model.Team{
			ID:      uuid.NewString(),
			EventID: event.ID,
			Name:    fmt.Sprintf("Team %c", 'A'+t),
		}
		season.Teams = append(season.Teams, team)
		for m := 0; m < teamSize; m++ {
			p := season.Participants[t*teamSize+m]
			season.TeamMembers = append(season.TeamMembers, model.TeamMember{
				ID:            uuid.NewString(),
				TeamID:        team.ID,
				ParticipantID: p.ID,
			})
			res := model.Result{
				ID:            uuid.NewString(),
				EventID:       event.ID,
				ParticipantID: p.ID,
				Dnf:           rnd.Intn(20) == 0,
			}
			if !res.Dnf {
				res.TimeSeconds = 1400 + rnd.Intn(600)
			}
			season.Results = append(season.Results, res)
		}
	}
}
