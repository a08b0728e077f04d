package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hrtrack/internal/api"
	"hrtrack/internal/config"
	"hrtrack/internal/geo"
	"hrtrack/internal/logging"
	"hrtrack/internal/models"
	"hrtrack/internal/store"
	"hrtrack/internal/tracker"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "hrtrack",
	Short: "A terminal client for HR attendance tracking",
	Long: `hrtrack is a command-line client for an HRMS backend.
Check in and out of shifts with your workstation location, watch a live
countdown to shift end, apply for leave, and browse the employee directory.`,
}

// app bundles everything a command needs: config, the local store, the API
// client, and the attendance tracker wired together.
type app struct {
	cfg     *config.Config
	store   *store.Store
	api     *api.Client
	geo     *geo.ConfigProvider
	tracker *tracker.Tracker
	user    *models.AuthUser
}

// userID is the tracker's per-user scope key.
func (a *app) userID() string {
	if a.user == nil {
		return ""
	}
	return strconv.Itoa(a.user.EmployeeID)
}

// initApp loads config and credentials and wires the collaborators.
func initApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.Setup(cfg.LogLevel)

	st, err := store.Initialize()
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	client := api.New(cfg.APIURL, st)
	provider := &geo.ConfigProvider{
		Latitude:  cfg.Latitude,
		Longitude: cfg.Longitude,
		Consent:   cfg.LocationConsent,
	}
	tr := tracker.New(client, st, provider, &cliNotifier{})

	a := &app{cfg: cfg, store: st, api: client, geo: provider, tracker: tr}

	_, user, err := st.LoadCredentials()
	if err != nil {
		return nil, err
	}
	a.user = user
	return a, nil
}

// withApp wraps a command function, building the app first and closing it
// after.
func withApp(fn func(a *app, cmd *cobra.Command, args []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		a, err := initApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer a.store.Close()
		defer a.tracker.Close()
		fn(a, cmd, args)
	}
}

// withUser is withApp plus a login requirement; it also restores the
// tracker session for the logged-in user before running the command.
func withUser(fn func(a *app, cmd *cobra.Command, args []string)) func(*cobra.Command, []string) {
	return withApp(func(a *app, cmd *cobra.Command, args []string) {
		if a.user == nil {
			fmt.Println("Not logged in. Use 'hrtrack login' first.")
			return
		}
		a.tracker.Bootstrap(a.userID())
		fn(a, cmd, args)
	})
}

// cliNotifier prints tracker notices to the terminal.
type cliNotifier struct{}

func (cliNotifier) Successf(format string, args ...any) {
	fmt.Printf("✅ "+format+"\n", args...)
}

func (cliNotifier) Errorf(format string, args ...any) {
	fmt.Printf("❌ "+format+"\n", args...)
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hrtrack %s (commit %s, built %s)\n", version, commit, date)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(checkinCmd)
	rootCmd.AddCommand(checkoutCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(shiftCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(leaveCmd)
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(versionCmd)
}
