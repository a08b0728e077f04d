package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hrtrack/internal/tracker"
	"hrtrack/internal/tui"
)

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Check in to your shift",
	Long: `Check in to your shift with the workstation location. Coordinates
come from HRTRACK_LATITUDE/HRTRACK_LONGITUDE unless --lat/--lon override
them.

Examples:
  hrtrack checkin
  hrtrack checkin --lat 12.9716 --lon 77.5946`,
	Run: withUser(func(a *app, cmd *cobra.Command, args []string) {
		applyLocationFlags(a, cmd)
		a.tracker.CheckIn(cmd.Context())
		printSession(a.tracker.Session())
	}),
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Check out of your shift",
	Run: withUser(func(a *app, cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm("Check out now?") {
			fmt.Println("Cancelled.")
			return
		}
		applyLocationFlags(a, cmd)
		a.tracker.CheckOut(cmd.Context())
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's attendance status",
	Run: withUser(func(a *app, cmd *cobra.Command, args []string) {
		a.tracker.Sync(cmd.Context())
		printSession(a.tracker.Session())
	}),
}

var shiftCmd = &cobra.Command{
	Use:   "shift",
	Short: "Watch the live shift countdown",
	Long:  `Open the live shift view: a countdown to shift end that re-syncs with the server whenever the terminal regains focus.`,
	Run: withUser(func(a *app, cmd *cobra.Command, args []string) {
		if err := tui.RunShiftTUI(a.tracker, *a.user); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile local state with the server",
	Run: withUser(func(a *app, cmd *cobra.Command, args []string) {
		a.tracker.Sync(cmd.Context())
		printSession(a.tracker.Session())
	}),
}

// applyLocationFlags lets --lat/--lon override the configured coordinates.
// Passing them counts as location consent.
func applyLocationFlags(a *app, cmd *cobra.Command) {
	if cmd.Flags().Changed("lat") {
		lat, _ := cmd.Flags().GetFloat64("lat")
		a.geo.Latitude = lat
		a.geo.Consent = true
	}
	if cmd.Flags().Changed("lon") {
		lon, _ := cmd.Flags().GetFloat64("lon")
		a.geo.Longitude = lon
		a.geo.Consent = true
	}
}

// confirm asks a yes/no question on stdin, defaulting to no.
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// printSession prints the one-shot status block.
func printSession(s tracker.Session) {
	switch s.Status {
	case tracker.CheckedIn:
		fmt.Printf("⏱️  Checked in at %s\n", s.CheckInTime.Format("15:04:05"))
		fmt.Printf("Shift ends at %s\n", s.ShiftEndTime.Format("15:04:05"))
		if s.RemainingSeconds > 0 {
			fmt.Printf("Remaining: %s\n", formatRemaining(s.RemainingSeconds))
		} else {
			fmt.Println("Shift is over, remember to check out.")
		}
	case tracker.CheckedOut:
		fmt.Println("✅ Checked out for today.")
	default:
		fmt.Println("○ Not checked in.")
	}
}

func formatRemaining(seconds int) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

func init() {
	for _, cmd := range []*cobra.Command{checkinCmd, checkoutCmd} {
		cmd.Flags().Float64("lat", 0, "Override latitude for this punch")
		cmd.Flags().Float64("lon", 0, "Override longitude for this punch")
	}
	checkoutCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
