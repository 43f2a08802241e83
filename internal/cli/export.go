package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jwulff/glucodash/internal/dataset"
	"github.com/jwulff/glucodash/internal/health"
	"github.com/jwulff/glucodash/internal/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export [patient-id]",
		Short: "Export a patient's health record as an xlsx workbook",
		Args:  cobra.MaximumNArgs(1),
		Run:   runExport,
	}

	defaults := make([]string, len(report.DefaultSections))
	for i, s := range report.DefaultSections {
		defaults[i] = string(s)
	}
	cmd.Flags().StringSlice("sections", defaults, "Sections to include")
	cmd.Flags().String("notes", "", "Clinical notes; adds the clinicalNotes section")
	cmd.Flags().StringP("out", "o", "", "Output directory or .xlsx file (default: current directory)")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	names, _ := cmd.Flags().GetStringSlice("sections")
	notes, _ := cmd.Flags().GetString("notes")
	out, _ := cmd.Flags().GetString("out")

	sections, err := report.ParseSections(names)
	if err != nil {
		exitErr("parse sections", err)
	}
	if notes != "" && !cmd.Flags().Changed("sections") {
		sections = append(sections, report.SectionNotes)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	d := loadDataset()
	p := resolvePatient(cmd.Context(), s, d, args)

	in, err := reportInput(d, p, notes, time.Now())
	if err != nil {
		exitErr("collect record", err)
	}
	f, err := report.NewReport(in, sections...).Generate()
	if err != nil {
		exitErr("generate report", err)
	}

	path := exportPath(out, p, in.GeneratedAt)
	if err := f.Save(path); err != nil {
		exitErr("save report", err)
	}
	log.Infow("exported record", "patient", p.ID, "path", path, "sections", len(sections))

	if formatFlag == "json" {
		printJSON(cmd, map[string]string{"patientId": p.ID, "path": path})
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
}

func reportInput(d *dataset.Dataset, p health.Patient, notes string, at time.Time) (report.Input, error) {
	data, err := d.HealthData(p.ID)
	if err != nil {
		return report.Input{}, err
	}
	meds, err := d.Medications(p.ID)
	if err != nil {
		return report.Input{}, err
	}

	in := report.Input{
		Patient:     p,
		Health:      data,
		Medications: meds,
		Notes:       notes,
		GeneratedAt: at,
	}
	if t, err := d.LatestTranscript(p.ID); err == nil {
		in.LatestTranscript = &t
	}
	return in, nil
}

// exportPath resolves --out: empty means the working directory, a name
// ending in .xlsx is used as is, anything else is a directory.
func exportPath(out string, p health.Patient, at time.Time) string {
	name := report.FileName(p, at)
	switch {
	case out == "":
		return name
	case filepath.Ext(out) == ".xlsx":
		return out
	default:
		return filepath.Join(out, name)
	}
}
