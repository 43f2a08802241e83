package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jwulff/glucodash/internal/health"
)

func init() {
	appointments := &cobra.Command{
		Use:   "appointments [patient-id]",
		Short: "List appointments, newest first",
		Args:  cobra.MaximumNArgs(1),
		Run:   runAppointments,
	}
	appointments.Flags().Bool("upcoming", false, "Only appointments from today on, soonest first")
	appointments.Flags().Bool("past", false, "Only appointments before today")

	medications := &cobra.Command{
		Use:   "medications [patient-id]",
		Short: "List prescriptions",
		Args:  cobra.MaximumNArgs(1),
		Run:   runMedications,
	}

	transcripts := &cobra.Command{
		Use:   "transcripts [patient-id]",
		Short: "List appointment transcripts or play one back",
		Args:  cobra.MaximumNArgs(1),
		Run:   runTranscripts,
	}
	transcripts.Flags().StringP("show", "t", "", "Transcript id to print in full")
	transcripts.Flags().Bool("live", false, "Play the transcript back one line at a time")

	RootCmd.AddCommand(appointments, medications, transcripts)
}

func runAppointments(cmd *cobra.Command, args []string) {
	upcoming, _ := cmd.Flags().GetBool("upcoming")
	past, _ := cmd.Flags().GetBool("past")
	if upcoming && past {
		exitErr("parse flags", fmt.Errorf("--upcoming and --past are mutually exclusive"))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	d := loadDataset()
	p := resolvePatient(cmd.Context(), s, d, args)

	var list []health.Appointment
	switch {
	case upcoming:
		list, err = d.Upcoming(p.ID)
	case past:
		list, err = d.Past(p.ID)
	default:
		list, err = d.Appointments(p.ID)
	}
	if err != nil {
		exitErr("load appointments", err)
	}

	if formatFlag == "json" {
		printJSON(cmd, list)
		return
	}
	if len(list) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No appointments for %s\n", p.Name)
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tWHEN\tLENGTH\tSTATUS\tNOTES")
	for _, a := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d min\t%s\t%s\n",
			a.ID, a.Start.Format("2006-01-02 15:04"), humanize.Time(a.Start), int(a.Duration.Minutes()), a.Status, a.Notes)
	}
	w.Flush()
}

func runMedications(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	d := loadDataset()
	p := resolvePatient(cmd.Context(), s, d, args)

	meds, err := d.Medications(p.ID)
	if err != nil {
		exitErr("load medications", err)
	}

	if formatFlag == "json" {
		printJSON(cmd, meds)
		return
	}
	if len(meds) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No medications for %s\n", p.Name)
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDOSAGE\tFREQUENCY\tSINCE\tPRESCRIBED BY\tSTATUS")
	for _, m := range meds {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			m.Name, m.Dosage, m.Frequency, m.StartDate.Format(health.DateLayout), m.PrescribedBy, m.Status)
	}
	w.Flush()

	first := true
	for _, m := range meds {
		if m.Instructions == "" {
			continue
		}
		if first {
			fmt.Fprintln(cmd.OutOrStdout())
			first = false
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", m.Name, m.Instructions)
	}
}

func runTranscripts(cmd *cobra.Command, args []string) {
	show, _ := cmd.Flags().GetString("show")
	live, _ := cmd.Flags().GetBool("live")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	d := loadDataset()
	p := resolvePatient(cmd.Context(), s, d, args)

	if show == "" && !live {
		list, err := d.Transcripts(p.ID)
		if err != nil {
			exitErr("load transcripts", err)
		}
		if formatFlag == "json" {
			printJSON(cmd, list)
			return
		}
		printTranscriptList(cmd.OutOrStdout(), p, list)
		return
	}

	var t health.Transcript
	if show != "" {
		t, err = d.Transcript(show)
	} else {
		t, err = d.LatestTranscript(p.ID)
	}
	if err != nil {
		exitErr("load transcript", err)
	}
	if t.PatientID != p.ID {
		exitErr("load transcript", fmt.Errorf("transcript %q belongs to another patient", t.ID))
	}

	if formatFlag == "json" {
		printJSON(cmd, t)
		return
	}

	out := cmd.OutOrStdout()
	printTranscriptHeader(out, t)
	if !live {
		for _, line := range t.Lines {
			printTranscriptLine(out, line)
		}
		return
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ticker := time.NewTicker(cfg.PlaybackInterval)
	defer ticker.Stop()

	log.Infow("playing transcript", "transcript", t.ID, "interval", cfg.PlaybackInterval)
	if !playTranscript(out, t, ticker.C, sigChan) {
		fmt.Fprintln(out, "\nStopped.")
	}
}

// playTranscript prints the first line immediately and one more line per
// tick. It reports whether every line was printed before stop fired.
func playTranscript(out io.Writer, t health.Transcript, ticks <-chan time.Time, stop <-chan os.Signal) bool {
	for i, line := range t.Lines {
		if i > 0 {
			select {
			case <-ticks:
			case <-stop:
				return false
			}
		}
		printTranscriptLine(out, line)
	}
	return true
}

func printTranscriptList(out io.Writer, p health.Patient, list []health.Transcript) {
	if len(list) == 0 {
		fmt.Fprintf(out, "No transcripts for %s\n", p.Name)
		return
	}
	for _, t := range list {
		fmt.Fprintf(out, "%s  %s  %d min  %d lines\n  %s\n",
			t.ID, t.Date.Format(health.DateLayout), int(t.Duration.Minutes()), len(t.Lines), t.Summary)
	}
}

func printTranscriptHeader(out io.Writer, t health.Transcript) {
	fmt.Fprintf(out, "Transcript %s, %s (%d min)\n", t.ID, t.Date.Format(health.DateLayout), int(t.Duration.Minutes()))
	fmt.Fprintf(out, "Summary: %s\n\n", t.Summary)
}

func printTranscriptLine(out io.Writer, line health.TranscriptLine) {
	fmt.Fprintf(out, "[%s] %-7s %s\n", line.At.Format("15:04:05"), line.Speaker+":", line.Message)
}
