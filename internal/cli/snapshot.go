package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jwulff/glucodash/internal/health"
	"github.com/jwulff/glucodash/internal/status"
	"github.com/jwulff/glucodash/internal/storage"
)

func init() {
	snapshot := &cobra.Command{
		Use:   "snapshot",
		Short: "Keep generated readings in the database and read them back",
	}

	save := &cobra.Command{
		Use:   "save [patient-id]",
		Short: "Store this run's generated readings",
		Args:  cobra.MaximumNArgs(1),
		Run:   runSnapshotSave,
	}

	show := &cobra.Command{
		Use:   "show [patient-id]",
		Short: "Show stored readings",
		Args:  cobra.MaximumNArgs(1),
		Run:   runSnapshotShow,
	}
	show.Flags().String("since", "", "First day to include (YYYY-MM-DD)")
	show.Flags().String("until", "", "Last day to include (YYYY-MM-DD, default today)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List patients with stored readings (doctor only)",
		Args:  cobra.NoArgs,
		Run:   runSnapshotList,
	}

	prune := &cobra.Command{
		Use:   "prune [patient-id]",
		Short: "Delete stored readings dated before a day",
		Args:  cobra.MaximumNArgs(1),
		Run:   runSnapshotPrune,
	}
	prune.Flags().String("before", "", "Delete readings dated before this day (YYYY-MM-DD, required)")
	prune.MarkFlagRequired("before")

	snapshot.AddCommand(save, show, list, prune)
	RootCmd.AddCommand(snapshot)
}

func parseDay(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	t, err := time.Parse(health.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

func runSnapshotSave(cmd *cobra.Command, args []string) {
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
	if err := s.StoreReadings(cmd.Context(), data); err != nil {
		exitErr("store readings", err)
	}
	log.Infow("stored snapshot", "patient", p.ID, "glucose", len(data.Glucose), "a1c", len(data.A1C), "weight", len(data.Weight))

	fmt.Fprintf(cmd.OutOrStdout(), "Stored %d glucose, %d A1C and %d weight readings for %s\n",
		len(data.Glucose), len(data.A1C), len(data.Weight), p.ID)
}

func runSnapshotShow(cmd *cobra.Command, args []string) {
	sinceFlag, _ := cmd.Flags().GetString("since")
	untilFlag, _ := cmd.Flags().GetString("until")

	today := health.DateOf(time.Now())
	since, err := parseDay(sinceFlag, time.Time{})
	if err != nil {
		exitErr("parse --since", err)
	}
	until, err := parseDay(untilFlag, today)
	if err != nil {
		exitErr("parse --until", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	p := resolvePatient(cmd.Context(), s, loadDataset(), args)

	data, err := s.QueryReadings(cmd.Context(), p.ID, since, until)
	if storage.IsNotFound(err) {
		fmt.Fprintf(cmd.OutOrStdout(), "No stored readings for %s; run 'glucodash snapshot save' first\n", p.ID)
		return
	}
	if err != nil {
		exitErr("query readings", err)
	}

	if formatFlag == "json" {
		printJSON(cmd, data)
		return
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Stored readings for %s (%s)\n\n", p.Name, p.ID)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tKIND\tVALUE\tSTATUS")
	for _, g := range data.Glucose {
		fmt.Fprintf(w, "%s %s\tglucose\t%d mg/dL\t%s\n", g.Date.Format(health.DateLayout), g.Time, g.Value, status.Glucose(g.Value))
	}
	for _, a := range data.A1C {
		fmt.Fprintf(w, "%s\ta1c\t%.1f%%\t%s\n", a.Date.Format(health.DateLayout), a.Value, status.A1C(a.Value))
	}
	for _, wt := range data.Weight {
		fmt.Fprintf(w, "%s\tweight\t%.1f lbs\t\n", wt.Date.Format(health.DateLayout), wt.Value)
	}
	w.Flush()
}

func runSnapshotList(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()
	requireDoctor(currentUser(cmd.Context(), s))

	ids, err := s.SnapshotPatients(cmd.Context())
	if err != nil {
		exitErr("list snapshots", err)
	}
	if formatFlag == "json" {
		printJSON(cmd, ids)
		return
	}
	if len(ids) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No stored readings")
		return
	}
	for _, id := range ids {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
}

func runSnapshotPrune(cmd *cobra.Command, args []string) {
	beforeFlag, _ := cmd.Flags().GetString("before")
	before, err := parseDay(beforeFlag, time.Time{})
	if err != nil {
		exitErr("parse --before", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	p := resolvePatient(cmd.Context(), s, loadDataset(), args)
	if err := s.DeleteReadings(cmd.Context(), p.ID, before); err != nil {
		exitErr("delete readings", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted readings for %s dated before %s\n", p.ID, before.Format(health.DateLayout))
}
