package points

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/rsv-series/scoring/log"
	"github.com/rsv-series/scoring/pkg/config"
	"github.com/rsv-series/scoring/pkg/model"
	"github.com/rsv-series/scoring/pkg/scoring"
	"github.com/rsv-series/scoring/pkg/snapshot"
	"github.com/rsv-series/scoring/pkg/utils"
)

func NewPointsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "points eventId",
		Short: "compute the scored results for one event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return computePoints(cmd.Context(), args[0])
		},
	}
	return cmd
}

func computePoints(ctx context.Context, eventArg string) error {
	logger := log.GetFromContext(ctx).Named("points")

	season, err := snapshot.Load(config.SnapshotFile)
	if err != nil {
		return err
	}
	event := season.EventByID(eventArg)
	if event == nil {
		return fmt.Errorf("event %q not found in snapshot", eventArg)
	}
	settings := season.EffectiveSettings(event.Season)
	if config.SettingsFile != "" {
		if settings, err = snapshot.LoadSettingsOverride(config.SettingsFile); err != nil {
			return err
		}
	}
	if !event.Finished {
		logger.Warn("event is not finished, points shown are provisional",
			log.String("event", event.Name))
	}

	results, err := scoring.CalculatePointsForEvent(
		event,
		season.ResultsForEvent(event.ID),
		season.Participants,
		season.TeamsForEvent(event.ID),
		season.TeamMembers,
		settings,
	)
	if err != nil {
		return err
	}
	logger.Info("event scored",
		log.String("event", event.Name),
		log.String("type", string(event.EventType)),
		log.Int("results", len(results)))

	if config.OutputFormat == "json" {
		data, err := oj.Marshal(results, 2)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s, season %d)\n\n", event.Name, event.EventType, event.Season)
	if err := writeGroupNotes(&sb, event); err != nil {
		return err
	}
	if event.EventType == model.EventTypeMZF {
		if err := writeTeamTable(&sb, season, event, settings); err != nil {
			return err
		}
	}
	writeResultTable(&sb, event, results)
	fmt.Print(sb.String())
	return nil
}

// writeGroupNotes prints the per group free text notes of the event
// (start times and the like) below the heading, in publication order.
func writeGroupNotes(sb *strings.Builder, event *model.Event) error {
	notes, err := event.GroupNotes()
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		return nil
	}
	for _, group := range model.AllGroups {
		if n := notes[group]; n != "" {
			fmt.Fprintf(sb, "%s: %s\n", group, n)
		}
	}
	sb.WriteString("\n")
	return nil
}

func writeTeamTable(
	sb *strings.Builder,
	season *snapshot.Season,
	event *model.Event,
	settings *model.Settings,
) error {
	scores, err := scoring.CalculateTeamScores(
		event,
		season.ResultsForEvent(event.ID),
		season.Participants,
		season.TeamsForEvent(event.ID),
		season.TeamMembers,
		settings,
	)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(scores))
	for _, t := range scores {
		rank := "-"
		if t.Ranked() {
			rank = strconv.Itoa(t.Rank) + "."
		}
		rows = append(rows, []string{
			rank,
			t.Name,
			strconv.Itoa(t.FinisherCount),
			utils.FormatSeconds(t.BaseTime),
			strconv.Itoa(t.HandicapSeconds),
			formatAdjusted(t.AdjustedTime),
			strconv.Itoa(t.Points),
		})
	}
	sb.WriteString("Teams\n")
	utils.WriteTable(sb, []string{
		"Rank", "Team", "Finishers", "Base", "Handicap", "Adjusted", "Points",
	}, rows)
	sb.WriteString("\n")
	return nil
}

func writeResultTable(sb *strings.Builder, event *model.Event, results []scoring.ScoredResult) {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rank := "-"
		switch {
		case r.Dnf:
			rank = "DNF"
		case r.Rank > 0:
			rank = strconv.Itoa(r.Rank) + "."
		}
		name := r.ParticipantName
		if name == "" {
			name = r.ParticipantID
		}
		row := []string{rank, name, string(r.Group)}
		if event.EventType == model.EventTypeHandicap {
			row = append(row, strconv.Itoa(max(r.FinisherGroup, 1)))
		} else {
			row = append(row,
				utils.FormatSeconds(r.TimeSeconds),
				formatAdjusted(r.AdjustedTime))
		}
		row = append(row, strconv.Itoa(r.Points))
		rows = append(rows, row)
	}
	headers := []string{"Rank", "Name", "Group"}
	if event.EventType == model.EventTypeHandicap {
		headers = append(headers, "Start group")
	} else {
		headers = append(headers, "Time", "Adjusted")
	}
	headers = append(headers, "Points")
	utils.WriteTable(sb, headers, rows)
}

func formatAdjusted(adjusted int) string {
	if adjusted >= scoring.TimeUnranked {
		return "-"
	}
	return utils.FormatSeconds(adjusted)
}
