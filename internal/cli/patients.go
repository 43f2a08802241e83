package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jwulff/glucodash/internal/health"
	"github.com/jwulff/glucodash/internal/render"
	"github.com/jwulff/glucodash/internal/status"
)

func init() {
	patients := &cobra.Command{
		Use:   "patients",
		Short: "List the patient roster (doctor only)",
		Args:  cobra.NoArgs,
		Run:   runPatients,
	}
	patients.Flags().StringP("search", "s", "", "Filter by name or patient id")

	overview := &cobra.Command{
		Use:   "overview",
		Short: "Show roster-wide control and compliance counts (doctor only)",
		Args:  cobra.NoArgs,
		Run:   runOverview,
	}

	RootCmd.AddCommand(patients, overview)
}

func runPatients(cmd *cobra.Command, args []string) {
	query, _ := cmd.Flags().GetString("search")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()
	requireDoctor(currentUser(cmd.Context(), s))

	roster := loadDataset().Search(query)
	if formatFlag == "json" {
		printJSON(cmd, roster)
		return
	}
	if len(roster) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No patients match %q\n", query)
		return
	}

	color := colorEnabled()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tAGE\tTYPE\tA1C\tCOMPLIANCE\tNEXT VISIT\tALERTS")
	for _, p := range roster {
		a1c := status.A1C(p.LatestA1C)
		compliance := status.Compliance(p.MedicationCompliance)
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%.1f%% %s\t%g%% %s\t%s\t%d\n",
			p.ID, p.Name, p.Age, p.DiabetesType,
			p.LatestA1C, render.Badge(string(a1c), render.A1CColor(a1c), color),
			p.MedicationCompliance, render.Badge(string(compliance), render.ComplianceColor(compliance), color),
			nextVisit(p), len(p.RecentAlerts))
	}
	w.Flush()
}

func nextVisit(p health.Patient) string {
	if !p.HasNextAppointment() {
		return "-"
	}
	return p.NextAppointment.Format(health.DateLayout)
}

func runOverview(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()
	requireDoctor(currentUser(cmd.Context(), s))

	o := loadDataset().Overview()
	if formatFlag == "json" {
		printJSON(cmd, o)
		return
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Total patients:      %d\n", o.Total)
	fmt.Fprintf(out, "Well controlled:     %d (A1C < %.0f%%)\n", o.WellControlled, status.A1CFairFrom)
	fmt.Fprintf(out, "Needs attention:     %d (A1C >= %.0f%%)\n", o.NeedsAttention, status.A1CAttentionFrom)
	fmt.Fprintf(out, "Average compliance:  %g%%\n", o.AverageCompliance)
}
