package cmd

import (
	"astrocore/internal/app"
	"astrocore/internal/domain"
	"astrocore/internal/logger"
	"astrocore/internal/repository"
	l1_service "astrocore/internal/service/l1"
	l3_service "astrocore/internal/service/l3"
	"astrocore/internal/util"
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func Execute() error {
	ctx := logger.WithContext(context.Background(), logger.New())
	return NewRootCommand().ExecuteContext(ctx)
}

func NewRootCommand() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           "astro",
		Short:         "Aspects, lunar cycle, planetary hours and electional scoring over chart snapshots",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default chosen by ASTRO_ENV)")

	deps := func() (*Dependencies, error) {
		return InitializeDependencies(configPath)
	}
	root.AddCommand(
		newAspectsCommand(deps),
		newSynastryCommand(deps),
		newMidpointsCommand(deps),
		newMoonCommand(deps),
		newHourCommand(deps),
		newElectCommand(deps),
		newBestDatesCommand(deps),
		newGuidelinesCommand(),
	)
	return root
}

type dependencyLoader func() (*Dependencies, error)

func newAspectsCommand(deps dependencyLoader) *cobra.Command {
	var chartPath string
	c := &cobra.Command{
		Use:   "aspects",
		Short: "List natal aspects of a chart, split into benefic and malefic",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deps()
			if err != nil {
				return err
			}
			out, err := d.ChartApp.Aspects(cmd.Context(), chartPath)
			if err != nil {
				return err
			}
			return util.Pprint(cmd.OutOrStdout(), out)
		},
	}
	c.Flags().StringVar(&chartPath, "chart", "", "chart JSON file")
	c.MarkFlagRequired("chart")
	return c
}

func newSynastryCommand(deps dependencyLoader) *cobra.Command {
	var chartPath, otherPath string
	c := &cobra.Command{
		Use:   "synastry",
		Short: "List aspects between two charts",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deps()
			if err != nil {
				return err
			}
			out, err := d.ChartApp.Synastry(cmd.Context(), chartPath, otherPath)
			if err != nil {
				return err
			}
			return util.Pprint(cmd.OutOrStdout(), out)
		},
	}
	c.Flags().StringVar(&chartPath, "chart", "", "first chart JSON file")
	c.Flags().StringVar(&otherPath, "other", "", "second chart JSON file")
	c.MarkFlagRequired("chart")
	c.MarkFlagRequired("other")
	return c
}

func newMidpointsCommand(deps dependencyLoader) *cobra.Command {
	var (
		chartPath, otherPath string
		orb                  float64
	)
	c := &cobra.Command{
		Use:   "midpoints",
		Short: "Calculate catalog midpoints and the points activating them",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deps()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("orb") {
				orb = d.Config.MidpointOrb
			}
			out, err := d.ChartApp.Midpoints(cmd.Context(), chartPath, otherPath, orb)
			if err != nil {
				return err
			}
			return util.Pprint(cmd.OutOrStdout(), out)
		},
	}
	c.Flags().StringVar(&chartPath, "chart", "", "chart JSON file")
	c.Flags().StringVar(&otherPath, "other", "", "chart whose points activate the midpoints")
	c.Flags().Float64Var(&orb, "orb", l1_service.DefaultMidpointOrb, "activation orb in degrees")
	c.MarkFlagRequired("chart")
	return c
}

func newMoonCommand(deps dependencyLoader) *cobra.Command {
	var chartPath string
	c := &cobra.Command{
		Use:   "moon",
		Short: "Report moon phase, illumination and void of course status",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deps()
			if err != nil {
				return err
			}
			out, err := d.ChartApp.Moon(cmd.Context(), chartPath)
			if err != nil {
				return err
			}
			return util.Pprint(cmd.OutOrStdout(), out)
		},
	}
	c.Flags().StringVar(&chartPath, "chart", "", "chart JSON file")
	c.MarkFlagRequired("chart")
	return c
}

func newHourCommand(deps dependencyLoader) *cobra.Command {
	var (
		at, sunrise, sunset, nextSunrise string
		latitude                         float64
	)
	c := &cobra.Command{
		Use:   "hour",
		Short: "Find the planetary hour containing an instant",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deps()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("latitude") {
				latitude = d.Config.Latitude
			}
			in := l1_service.PlanetaryHourInput{Latitude: latitude, Location: d.Location}
			if in.Instant, err = util.ParseTime(at); err != nil {
				return err
			}
			if in.Sunrise, err = util.ParseTime(sunrise); err != nil {
				return err
			}
			if in.Sunset, err = util.ParseTime(sunset); err != nil {
				return err
			}
			if nextSunrise != "" {
				t, err := util.ParseTime(nextSunrise)
				if err != nil {
					return err
				}
				in.NextSunrise = &t
			}
			out, err := d.PlanetaryHourService.CalculatePlanetaryHour(in)
			if err != nil {
				return err
			}
			return util.Pprint(cmd.OutOrStdout(), out)
		},
	}
	c.Flags().StringVar(&at, "at", "", "instant (RFC3339)")
	c.Flags().StringVar(&sunrise, "sunrise", "", "sunrise of the day (RFC3339)")
	c.Flags().StringVar(&sunset, "sunset", "", "sunset of the day (RFC3339)")
	c.Flags().StringVar(&nextSunrise, "next-sunrise", "", "following sunrise (RFC3339, default sunrise + 24h)")
	c.Flags().Float64Var(&latitude, "latitude", 0, "observer latitude, used in error reports")
	c.MarkFlagRequired("at")
	c.MarkFlagRequired("sunrise")
	c.MarkFlagRequired("sunset")
	return c
}

func newElectCommand(deps dependencyLoader) *cobra.Command {
	var chartPath, snapshotPath, event, at, sunrise, sunset string
	c := &cobra.Command{
		Use:   "elect",
		Short: "Score one moment for an event type",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deps()
			if err != nil {
				return err
			}
			in := app.ElectInput{ChartPath: chartPath}
			if in.EventType, err = domain.ParseEventType(event); err != nil {
				return err
			}
			if in.DateTime, err = util.ParseTime(at); err != nil {
				return err
			}

			var out *domain.ElectionAnalysis
			if snapshotPath != "" {
				out, err = d.ElectionApp(snapshotPath, "").ElectSnapshot(cmd.Context(), in.EventType, in.DateTime)
			} else {
				if in.Sunrise, err = parseOptionalTime(sunrise); err != nil {
					return err
				}
				if in.Sunset, err = parseOptionalTime(sunset); err != nil {
					return err
				}
				out, err = d.ChartApp.Elect(cmd.Context(), in)
			}
			if err != nil {
				return err
			}
			return util.Pprint(cmd.OutOrStdout(), out)
		},
	}
	c.Flags().StringVar(&chartPath, "chart", "", "chart JSON file for the moment")
	c.Flags().StringVar(&snapshotPath, "snapshots", "", "snapshot file (JSON or CSV) holding a chart cast exactly at --at")
	c.Flags().StringVar(&event, "event", "", "event type, e.g. marriage or signing-contracts")
	c.Flags().StringVar(&at, "at", "", "moment being scored (RFC3339)")
	c.Flags().StringVar(&sunrise, "sunrise", "", "sunrise of the day (RFC3339), with --chart")
	c.Flags().StringVar(&sunset, "sunset", "", "sunset of the day (RFC3339), with --chart")
	c.MarkFlagsOneRequired("chart", "snapshots")
	c.MarkFlagsMutuallyExclusive("chart", "snapshots")
	c.MarkFlagsMutuallyExclusive("snapshots", "sunrise")
	c.MarkFlagsMutuallyExclusive("snapshots", "sunset")
	c.MarkFlagRequired("event")
	c.MarkFlagRequired("at")
	return c
}

func newBestDatesCommand(deps dependencyLoader) *cobra.Command {
	var (
		snapshotPath, event, from, to, format, rankExpression string
		limit                                                 int
		includeAnalysis                                       bool
	)
	c := &cobra.Command{
		Use:   "best-dates",
		Short: "Rank stored snapshots in a date range for an event type",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deps()
			if err != nil {
				return err
			}
			in := app.FindBestDatesInput{
				Limit:           limit,
				IncludeAnalysis: includeAnalysis || format == string(repository.RankedDateFormat_CSV),
			}
			if in.EventType, err = domain.ParseEventType(event); err != nil {
				return err
			}
			if in.Start, err = util.ParseTime(from); err != nil {
				return err
			}
			if in.End, err = util.ParseTime(to); err != nil {
				return err
			}

			out, err := d.ElectionApp(snapshotPath, rankExpression).FindBestDates(cmd.Context(), in)
			if err != nil {
				return err
			}
			if format == string(repository.RankedDateFormat_CSV) {
				return d.RankedDateRepository.Write(cmd.OutOrStdout(), out.Dates, repository.RankedDateFormat_CSV)
			}
			return util.Pprint(cmd.OutOrStdout(), out)
		},
	}
	c.Flags().StringVar(&snapshotPath, "snapshots", "", "snapshot file (.json or .csv)")
	c.Flags().StringVar(&event, "event", "", "event type")
	c.Flags().StringVar(&from, "from", "", "range start (date or RFC3339)")
	c.Flags().StringVar(&to, "to", "", "range end, inclusive (date or RFC3339)")
	c.Flags().IntVar(&limit, "limit", 0, "keep only the best N dates")
	c.Flags().StringVar(&format, "format", "json", "output format: json or csv")
	c.Flags().StringVar(&rankExpression, "rank", "", "rank expression overriding the config, e.g. \"total - 5 * warnings\"")
	c.Flags().BoolVar(&includeAnalysis, "analysis", false, "include the full analysis of each date")
	c.MarkFlagRequired("snapshots")
	c.MarkFlagRequired("event")
	c.MarkFlagRequired("from")
	c.MarkFlagRequired("to")
	return c
}

func newGuidelinesCommand() *cobra.Command {
	var event string
	c := &cobra.Command{
		Use:   "guidelines",
		Short: "Show electional guidelines for one or every event type",
		RunE: func(cmd *cobra.Command, args []string) error {
			if event != "" {
				eventType, err := domain.ParseEventType(event)
				if err != nil {
					return err
				}
				g, err := l3_service.GetElectionalGuidelines(eventType)
				if err != nil {
					return err
				}
				return util.Pprint(cmd.OutOrStdout(), g)
			}

			all := map[domain.EventType]domain.ElectionalGuideline{}
			for _, e := range domain.AllEventTypes {
				g, err := l3_service.GetElectionalGuidelines(e)
				if err != nil {
					return err
				}
				all[e] = g
			}
			return util.Pprint(cmd.OutOrStdout(), all)
		},
	}
	c.Flags().StringVar(&event, "event", "", "event type (all when empty)")
	return c
}

func parseOptionalTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := util.ParseTime(s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse time: %w", err)
	}
	return &t, nil
}
