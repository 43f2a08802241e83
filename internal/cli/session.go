package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwulff/glucodash/internal/health"
	"github.com/jwulff/glucodash/internal/storage"
)

func init() {
	login := &cobra.Command{
		Use:   "login",
		Short: "Start a session as the doctor or a patient",
		Args:  cobra.NoArgs,
		Run:   runLogin,
	}
	login.Flags().StringP("role", "r", "doctor", "Role: doctor or patient")
	login.Flags().StringP("patient", "p", "", "Patient id (required for the patient role)")

	logout := &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		Run:   runLogout,
	}

	whoami := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		Run:   runWhoami,
	}

	use := &cobra.Command{
		Use:   "use [patient-id]",
		Short: "Select the patient later commands act on (doctor only)",
		Args:  cobra.MaximumNArgs(1),
		Run:   runUse,
	}
	use.Flags().Bool("clear", false, "Clear the selected patient")

	RootCmd.AddCommand(login, logout, whoami, use)
}

func runLogin(cmd *cobra.Command, args []string) {
	role, _ := cmd.Flags().GetString("role")
	patientID, _ := cmd.Flags().GetString("patient")

	if !health.Role(role).Valid() {
		exitErr("login", fmt.Errorf("unknown role %q", role))
	}

	d := loadDataset()
	user := d.Doctor()
	if health.Role(role) == health.RolePatient {
		if patientID == "" {
			exitErr("login", fmt.Errorf("--patient is required for the patient role"))
		}
		p, err := d.Patient(patientID)
		if err != nil {
			exitErr("login", err)
		}
		user = health.User{ID: p.ID, Name: p.Name, Role: health.RolePatient, Email: p.Email}
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	session := storage.NewSession(user)
	if err := s.SaveSession(cmd.Context(), session); err != nil {
		exitErr("save session", err)
	}
	log.Infow("logged in", "user", user.ID, "role", user.Role)

	if formatFlag == "json" {
		printJSON(cmd, session)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.Name, user.Role)
}

func runLogout(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.ClearSession(cmd.Context()); err != nil {
		exitErr("clear session", err)
	}
	if err := s.DeleteConfig(cmd.Context(), selectedPatientKey); err != nil {
		exitErr("clear selected patient", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
}

func runWhoami(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	session, err := s.GetSession(cmd.Context())
	if storage.IsNotFound(err) {
		fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
		return
	}
	if err != nil {
		exitErr("load session", err)
	}

	if formatFlag == "json" {
		printJSON(cmd, session)
		return
	}
	u := session.User
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) id=%s since %s\n", u.Name, u.Role, u.ID, session.StartedAt.Local().Format("2006-01-02 15:04"))
}

func runUse(cmd *cobra.Command, args []string) {
	clearSelection, _ := cmd.Flags().GetBool("clear")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	ctx := cmd.Context()
	requireDoctor(currentUser(ctx, s))

	if clearSelection {
		if err := s.DeleteConfig(ctx, selectedPatientKey); err != nil {
			exitErr("clear selected patient", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No patient selected")
		return
	}

	if len(args) == 0 {
		id, err := s.GetConfig(ctx, selectedPatientKey)
		if storage.IsNotFound(err) {
			fmt.Fprintln(cmd.OutOrStdout(), "No patient selected")
			return
		}
		if err != nil {
			exitErr("load selected patient", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), id)
		return
	}

	p, err := loadDataset().Patient(args[0])
	if err != nil {
		exitErr("find patient", err)
	}
	if err := s.SetConfig(ctx, selectedPatientKey, p.ID); err != nil {
		exitErr("select patient", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Selected %s (%s)\n", p.Name, p.ID)
}
