package standings

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

func NewStandingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "compute the season standings per group",
		RunE: func(cmd *cobra.Command, args []string) error {
			return computeStandings(cmd.Context())
		},
	}
	return cmd
}

//nolint:funlen // sequential setup
func computeStandings(ctx context.Context) error {
	logger := log.GetFromContext(ctx).Named("standings")

	season, err := snapshot.Load(config.SnapshotFile)
	if err != nil {
		return err
	}
	year := season.DefaultSeason(config.Season)
	if year == 0 {
		return fmt.Errorf("snapshot has no events and no --season was given")
	}
	settings := season.EffectiveSettings(year)
	if config.SettingsFile != "" {
		if settings, err = snapshot.LoadSettingsOverride(config.SettingsFile); err != nil {
			return err
		}
	}
	if settings.SeasonClosed(year) {
		logger.Info("season is closed, standings are final", log.Int("season", year))
	}

	// score every finished event of the season, then aggregate
	scored := make([]scoring.ScoredResult, 0, len(season.Results))
	events := make([]model.Event, 0, len(season.Events))
	for i := range season.Events {
		event := season.Events[i]
		if event.Season != year {
			continue
		}
		events = append(events, event)
		if !event.Finished {
			continue
		}
		eventResults, err := scoring.CalculatePointsForEvent(
			&event,
			season.ResultsForEvent(event.ID),
			season.Participants,
			season.TeamsForEvent(event.ID),
			season.TeamMembers,
			settings,
		)
		if err != nil {
			return fmt.Errorf("event %s: %w", event.Name, err)
		}
		scored = append(scored, eventResults...)
	}

	tables, err := scoring.CalculateOverallStandings(
		scored, season.Participants, events, settings)
	if err != nil {
		return err
	}
	logger.Info("standings computed",
		log.Int("season", year),
		log.Int("events", len(events)))

	if config.OutputFormat == "json" {
		data, err := oj.Marshal(tables, 2)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Season %d standings\n\n", year)
	for _, group := range model.AllGroups {
		rows := tables[group]
		fmt.Fprintf(&sb, "%s\n", groupHeading(group))
		if len(rows) == 0 {
			sb.WriteString("no results\n\n")
			continue
		}
		writeGroupTable(&sb, rows)
		sb.WriteString("\n")
	}
	fmt.Print(sb.String())
	return nil
}

func groupHeading(group model.GroupLabel) string {
	switch group {
	case model.GroupAmbitious:
		return "Männer Ambitioniert (C/D)"
	case model.GroupHobby:
		return "Männer Hobby (A/B)"
	default:
		return "Frauen"
	}
}

func writeGroupTable(sb *strings.Builder, rows []scoring.Standing) {
	tableRows := make([][]string, 0, len(rows))
	for _, st := range rows {
		entries := make([]string, 0, len(st.Results))
		for _, e := range st.Results {
			if e.IsDropped {
				entries = append(entries, fmt.Sprintf("(%d)", e.Points))
			} else {
				entries = append(entries, strconv.Itoa(e.Points))
			}
		}
		tableRows = append(tableRows, []string{
			strconv.Itoa(st.Position) + ".",
			st.ParticipantName,
			string(st.ParticipantClass),
			strings.Join(entries, " "),
			strconv.Itoa(st.FinalPoints),
		})
	}
	utils.WriteTable(sb, []string{"Place", "Name", "Class", "Events", "Total"}, tableRows)
}
