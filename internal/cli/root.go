// Package cli implements the glucodash commands.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jwulff/glucodash/internal/config"
	"github.com/jwulff/glucodash/internal/dataset"
	"github.com/jwulff/glucodash/internal/fixtures"
	"github.com/jwulff/glucodash/internal/generator"
	"github.com/jwulff/glucodash/internal/health"
	"github.com/jwulff/glucodash/internal/logger"
	"github.com/jwulff/glucodash/internal/storage"
	"github.com/jwulff/glucodash/internal/storage/sqlite"
)

// selectedPatientKey holds the doctor's current patient between commands.
const selectedPatientKey = "selected.patient"

var (
	dbPath     string
	formatFlag string
	noColor    bool

	cfg *config.Config
	log *zap.SugaredLogger = zap.NewNop().Sugar()
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "glucodash",
	Short: "Diabetes dashboard for doctors and patients",
	Long: "A terminal diabetes dashboard over a synthetic patient roster. " +
		"Log in as the doctor to browse every patient, or as a patient to see your own records.",
	PersistentPreRun: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $GLUCODASH_DB or ~/.glucodash/glucodash.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: json or text")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func setup(cmd *cobra.Command, args []string) {
	cfg = config.New()
	if err := cfg.LoadFromEnv(); err != nil {
		exitErr("load config", err)
	}
	if formatFlag != "json" && formatFlag != "text" {
		exitErr("parse flags", fmt.Errorf("unknown format %q", formatFlag))
	}

	l, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		exitErr("create logger", err)
	}
	log = logger.Sugar(l).With("command", cmd.Name())
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.DatabasePath()
}

func openStore() (*sqlite.Store, error) {
	path := getDBPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	log.Debugw("opening store", "path", path)
	return sqlite.NewFileStore(path)
}

// loadDataset generates every patient's series for this run. A zero seed
// draws noise from the wall clock.
func loadDataset() *dataset.Dataset {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debugw("generating dataset", "seed", seed, "glucoseDays", cfg.GlucoseDays)

	gen := generator.New(generator.NewRandNoise(seed), time.Now())
	return dataset.New(fixtures.Default(), gen, dataset.WithGlucoseDays(cfg.GlucoseDays))
}

// currentUser returns the logged-in user or exits.
func currentUser(ctx context.Context, s storage.Store) health.User {
	session, err := s.GetSession(ctx)
	if storage.IsNotFound(err) {
		exitErr("not logged in", errors.New("run 'glucodash login' first"))
	}
	if err != nil {
		exitErr("load session", err)
	}
	return session.User
}

func requireDoctor(user health.User) {
	if user.Role != health.RoleDoctor {
		exitErr("permission denied", errors.New("this view is only available to the doctor"))
	}
}

// resolvePatient picks the patient a command acts on. Patients only ever see
// their own records; the doctor names one with an argument or falls back to
// the selected patient.
func resolvePatient(ctx context.Context, s storage.Store, d *dataset.Dataset, args []string) health.Patient {
	user := currentUser(ctx, s)

	var id string
	switch {
	case user.Role == health.RolePatient:
		if len(args) > 0 && args[0] != user.ID {
			exitErr("permission denied", fmt.Errorf("patients can only view their own records"))
		}
		id = user.ID
	case len(args) > 0:
		id = args[0]
	default:
		selected, err := s.GetConfig(ctx, selectedPatientKey)
		if storage.IsNotFound(err) {
			exitErr("no patient", errors.New("pass a patient id or run 'glucodash use <patient-id>'"))
		}
		if err != nil {
			exitErr("load selected patient", err)
		}
		id = selected
	}

	p, err := d.Patient(id)
	if err != nil {
		exitErr("find patient", err)
	}
	return p
}

// colorEnabled reports whether text output goes to a terminal that should
// get ANSI colors.
func colorEnabled() bool {
	return !noColor && formatFlag == "text" && isatty.IsTerminal(os.Stdout.Fd())
}

func printJSON(cmd *cobra.Command, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
