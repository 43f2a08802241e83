package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jwulff/glucodash/internal/aggregate"
	"github.com/jwulff/glucodash/internal/health"
	"github.com/jwulff/glucodash/internal/render"
	"github.com/jwulff/glucodash/internal/status"
)

const readingsPerDay = 3

func init() {
	healthCmd := &cobra.Command{
		Use:   "health [patient-id]",
		Short: "Show recent glucose readings, A1C history and weight changes",
		Args:  cobra.MaximumNArgs(1),
		Run:   runHealth,
	}
	healthCmd.Flags().Int("days", 7, "Days of glucose readings to show")
	healthCmd.Flags().Int("weeks", 8, "Weeks of weight history to show")

	chart := &cobra.Command{
		Use:   "chart [patient-id]",
		Short: "Plot daily-average glucose",
		Args:  cobra.MaximumNArgs(1),
		Run:   runChart,
	}
	chart.Flags().Int("days", 30, "Days to plot")
	chart.Flags().Int("width", 60, "Plot width in columns")
	chart.Flags().Int("height", 12, "Plot height in rows")

	statusCmd := &cobra.Command{
		Use:   "status <glucose|a1c|bmi|compliance> <value>",
		Short: "Classify a reading",
		Args:  cobra.ExactArgs(2),
		Run:   runStatus,
	}

	RootCmd.AddCommand(healthCmd, chart, statusCmd)
}

// healthView is the json shape of the health command.
type healthView struct {
	PatientID string                                   `json:"patientId"`
	Glucose   []health.GlucoseReading                  `json:"glucose"`
	A1C       []aggregate.Change[health.A1CReading]    `json:"a1c"`
	Weight    []aggregate.Change[health.WeightReading] `json:"weight"`
}

func runHealth(cmd *cobra.Command, args []string) {
	days, _ := cmd.Flags().GetInt("days")
	weeks, _ := cmd.Flags().GetInt("weeks")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	d := loadDataset()
	p := resolvePatient(cmd.Context(), s, d, args)

	glucose, err := d.RecentGlucose(p.ID, days)
	if err != nil {
		exitErr("load glucose", err)
	}
	data, err := d.HealthData(p.ID)
	if err != nil {
		exitErr("load health data", err)
	}

	view := healthView{
		PatientID: p.ID,
		Glucose:   glucose,
		A1C:       aggregate.ChangeSeries(data.A1C),
		Weight:    aggregate.ChangeSeries(aggregate.Last(data.Weight, weeks)),
	}
	if formatFlag == "json" {
		printJSON(cmd, view)
		return
	}

	color := colorEnabled()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s (%s)\n\n", p.Name, p.ID)
	fmt.Fprintf(out, "Glucose, last %d days\n", days)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTIME\tMG/DL\tMMOL/L\tSTATUS")
	for i := len(glucose) - 1; i >= 0; i-- {
		g := glucose[i]
		st := status.Glucose(g.Value)
		fmt.Fprintf(w, "%s\t%s\t%d\t%.1f\t%s\n",
			g.Date.Format(health.DateLayout), g.Time, g.Value, status.MgdlToMmol(g.Value),
			render.Badge(string(st), render.GlucoseColor(g.Value), color))
	}
	w.Flush()

	fmt.Fprintln(out, "\nA1C history")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tA1C\tCHANGE\tSTATUS")
	for _, c := range view.A1C {
		st := status.A1C(c.Reading.Value)
		fmt.Fprintf(w, "%s\t%.1f%%\t%s\t%s\n",
			c.Reading.Date.Format(health.DateLayout), c.Reading.Value, formatChange(c, "%"),
			render.Badge(string(st), render.A1CColor(st), color))
	}
	w.Flush()

	fmt.Fprintf(out, "\nWeight, last %d weeks\n", weeks)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tLBS\tCHANGE")
	for _, c := range view.Weight {
		fmt.Fprintf(w, "%s\t%.1f\t%s\n", c.Reading.Date.Format(health.DateLayout), c.Reading.Value, formatChange(c, " lbs"))
	}
	w.Flush()
}

// formatChange renders a delta with its direction arrow, or "-" when there
// is no earlier reading.
func formatChange[R health.Reading](c aggregate.Change[R], unit string) string {
	d := aggregate.DirectionOf(c)
	if d == aggregate.DirectionNone {
		return "-"
	}
	return fmt.Sprintf("%s %+.1f%s", d.Arrow(), c.Delta, unit)
}

func runChart(cmd *cobra.Command, args []string) {
	days, _ := cmd.Flags().GetInt("days")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	d := loadDataset()
	p := resolvePatient(cmd.Context(), s, d, args)

	data, err := d.HealthData(p.ID)
	if err != nil {
		exitErr("load health data", err)
	}
	points := aggregate.DailyAverage(data.Glucose, days*readingsPerDay)

	if formatFlag == "json" {
		printJSON(cmd, points)
		return
	}

	ch := render.RenderChart(points, render.NewChartConfig(width, height))
	if ch == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No glucose readings to plot")
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): daily average glucose, last %d days (mean %d mg/dL)\n\n",
		p.Name, p.ID, days, aggregate.MeanGlucose(aggregate.Last(data.Glucose, days*readingsPerDay), p.AverageGlucose))
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(ch.Lines(colorEnabled()), "\n"))
}

// classification is the json shape of the status command.
type classification struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
	Status string  `json:"status"`
	Detail string  `json:"detail,omitempty"`
}

func classify(metric string, value float64) (classification, error) {
	c := classification{Metric: metric, Value: value}
	switch metric {
	case "glucose":
		c.Status = string(status.Glucose(value))
		c.Detail = fmt.Sprintf("%.1f mmol/L, lab range %s", status.MgdlToMmol(value), status.LabGlucose(value))
	case "a1c":
		c.Status = string(status.A1C(value))
		c.Detail = status.A1CCategory(value)
	case "bmi":
		c.Status = string(status.BMI(value))
		c.Detail = status.BMIClass(value)
	case "compliance":
		c.Status = string(status.Compliance(value))
	default:
		return c, fmt.Errorf("unknown metric %q", metric)
	}
	return c, nil
}

func runStatus(cmd *cobra.Command, args []string) {
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		exitErr("parse value", err)
	}
	c, err := classify(strings.ToLower(args[0]), value)
	if err != nil {
		exitErr("classify", err)
	}

	if formatFlag == "json" {
		printJSON(cmd, c)
		return
	}
	if c.Detail == "" {
		fmt.Fprintln(cmd.OutOrStdout(), c.Status)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", c.Status, c.Detail)
}
