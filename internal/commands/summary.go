package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"hrtrack/internal/models"
	"hrtrack/internal/parser"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show your attendance summary",
	Long: `Show attendance records for a date range, defaulting to the last
7 days. Dates accept yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, or relative
forms like "3 days".

Examples:
  hrtrack summary
  hrtrack summary --from 2026-03-01 --to 2026-03-07
  hrtrack summary --employee 17    # HR only`,
	Run: withUser(func(a *app, cmd *cobra.Command, args []string) {
		now := time.Now()
		from := now.AddDate(0, 0, -6)
		to := now

		if v, _ := cmd.Flags().GetString("from"); v != "" {
			d, err := parser.ParseLeaveDate(v)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			from = d
		}
		if v, _ := cmd.Flags().GetString("to"); v != "" {
			d, err := parser.ParseLeaveDate(v)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			to = d
		}

		var (
			summary *models.AttendanceSummary
			err     error
		)
		if employeeID, _ := cmd.Flags().GetInt("employee"); employeeID > 0 {
			if !a.user.IsHR() {
				fmt.Println("Error: --employee requires the HR role")
				return
			}
			summary, err = a.api.EmployeeSummary(cmd.Context(), employeeID, parser.APIDate(from), parser.APIDate(to))
		} else {
			summary, err = a.api.MySummary(cmd.Context(), parser.APIDate(from), parser.APIDate(to))
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if len(summary.Records) == 0 {
			fmt.Println("No attendance records in range.")
			return
		}

		fmt.Printf("%-12s %-10s %-10s %-10s %s\n", "DATE", "IN", "OUT", "HOURS", "STATUS")
		fmt.Println(strings.Repeat("-", 52))
		for _, r := range summary.Records {
			date := r.Date
			if d, err := r.Day(); err == nil {
				date = d.Format("2006-01-02")
			}
			hours := ""
			if r.WorkedHours > 0 {
				hours = fmt.Sprintf("%.1fh", r.WorkedHours)
			}
			fmt.Printf("%-12s %-10s %-10s %-10s %s\n",
				date, orDash(r.InTime), orDash(r.OutTime), hours, r.Status)
		}
	}),
}

func orDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func init() {
	summaryCmd.Flags().String("from", "", "Range start (defaults to 6 days ago)")
	summaryCmd.Flags().String("to", "", "Range end (defaults to today)")
	summaryCmd.Flags().Int("employee", 0, "Show another employee's summary (HR only)")
}
