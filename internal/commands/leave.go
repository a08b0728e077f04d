package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"hrtrack/internal/models"
	"hrtrack/internal/parser"
)

var leaveCmd = &cobra.Command{
	Use:   "leave",
	Short: "Apply for and manage leave",
}

var leaveListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List your leave requests",
	Run: withUser(func(a *app, cmd *cobra.Command, args []string) {
		leaves, err := a.api.MyLeaves(cmd.Context())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(leaves) == 0 {
			fmt.Println("No leave requests. Use 'hrtrack leave apply' to create one.")
			return
		}
		printLeaveTable(leaves, false)
	}),
}

var leaveApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply for leave",
	Long: `Apply for leave over a date range. Dates accept yyyy-mm-dd,
dd/mm/yyyy, today, tomorrow, or relative forms like "3 days".

Examples:
  hrtrack leave apply --from tomorrow --to "3 days" --reason "family event"
  hrtrack leave apply --type HalfDay --from 2026-03-09 --to 2026-03-09 --reason "appointment"`,
	Run: withUser(func(a *app, cmd *cobra.Command, args []string) {
		fromArg, _ := cmd.Flags().GetString("from")
		toArg, _ := cmd.Flags().GetString("to")
		leaveType, _ := cmd.Flags().GetString("type")
		reason, _ := cmd.Flags().GetString("reason")

		if strings.TrimSpace(reason) == "" {
			fmt.Println("Error: --reason is required")
			return
		}

		from, err := parser.ParseLeaveDate(fromArg)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		to := from
		if toArg != "" {
			if to, err = parser.ParseLeaveDate(toArg); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
		}
		if to.Before(from) {
			fmt.Println("Error: end date is before start date")
			return
		}

		req := models.LeaveApplication{
			LeaveType: leaveType,
			StartDate: parser.APIDate(from),
			EndDate:   parser.APIDate(to),
			Reason:    strings.TrimSpace(reason),
		}
		if err := a.api.ApplyLeave(cmd.Context(), req); err != nil {
			fmt.Printf("❌ Leave application failed: %v\n", err)
			return
		}
		fmt.Printf("✅ Leave applied: %s to %s (%s)\n", req.StartDate, req.EndDate, req.LeaveType)
	}),
}

var leavePendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List leave requests awaiting a decision (HR)",
	Run: withUser(func(a *app, cmd *cobra.Command, args []string) {
		if !a.user.IsHR() {
			fmt.Println("Error: this command requires the HR role")
			return
		}
		leaves, err := a.api.PendingLeaves(cmd.Context())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(leaves) == 0 {
			fmt.Println("No pending leave requests.")
			return
		}
		printLeaveTable(leaves, true)
	}),
}

var leaveApproveCmd = &cobra.Command{
	Use:   "approve [leave-id]",
	Short: "Approve a pending leave request (HR)",
	Args:  cobra.ExactArgs(1),
	Run:   withUser(decideLeave(true)),
}

var leaveRejectCmd = &cobra.Command{
	Use:   "reject [leave-id]",
	Short: "Reject a pending leave request (HR)",
	Args:  cobra.ExactArgs(1),
	Run:   withUser(decideLeave(false)),
}

func decideLeave(approve bool) func(a *app, cmd *cobra.Command, args []string) {
	return func(a *app, cmd *cobra.Command, args []string) {
		if !a.user.IsHR() {
			fmt.Println("Error: this command requires the HR role")
			return
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Error: invalid leave id '%s'\n", args[0])
			return
		}
		if err := a.api.DecideLeave(cmd.Context(), id, approve); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if approve {
			fmt.Printf("✅ Approved leave #%d\n", id)
		} else {
			fmt.Printf("✅ Rejected leave #%d\n", id)
		}
	}
}

func printLeaveTable(leaves []models.LeaveRequest, withEmployee bool) {
	if withEmployee {
		fmt.Printf("%-5s %-20s %-10s %-12s %-12s %-6s %s\n", "ID", "EMPLOYEE", "TYPE", "FROM", "TO", "DAYS", "REASON")
		fmt.Println(strings.Repeat("-", 80))
	} else {
		fmt.Printf("%-5s %-10s %-12s %-12s %-6s %-10s %s\n", "ID", "TYPE", "FROM", "TO", "DAYS", "STATUS", "REASON")
		fmt.Println(strings.Repeat("-", 72))
	}
	for _, l := range leaves {
		reason := l.Reason
		if len(reason) > 28 {
			reason = reason[:25] + "..."
		}
		if withEmployee {
			name := "?"
			if l.Employee != nil {
				name = l.Employee.Name
			}
			fmt.Printf("%-5d %-20s %-10s %-12s %-12s %-6.1f %s\n",
				l.ID, name, l.LeaveType, l.StartDate, l.EndDate, l.TotalDays, reason)
		} else {
			fmt.Printf("%-5d %-10s %-12s %-12s %-6.1f %-10s %s\n",
				l.ID, l.LeaveType, l.StartDate, l.EndDate, l.TotalDays, l.OverallStatus, reason)
		}
	}
}

func init() {
	leaveApplyCmd.Flags().String("type", "FullDay", "Leave type: FullDay or HalfDay")
	leaveApplyCmd.Flags().String("from", "", "First day of leave (required)")
	leaveApplyCmd.Flags().String("to", "", "Last day of leave (defaults to --from)")
	leaveApplyCmd.Flags().String("reason", "", "Reason for leave (required)")

	leaveCmd.AddCommand(leaveListCmd)
	leaveCmd.AddCommand(leaveApplyCmd)
	leaveCmd.AddCommand(leavePendingCmd)
	leaveCmd.AddCommand(leaveApproveCmd)
	leaveCmd.AddCommand(leaveRejectCmd)
}
