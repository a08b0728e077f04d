package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"hrtrack/internal/models"
)

var employeesCmd = &cobra.Command{
	Use:     "employees",
	Aliases: []string{"emp"},
	Short:   "Browse the employee directory (HR)",
}

var employeesListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List all employees",
	Run: withUser(func(a *app, cmd *cobra.Command, args []string) {
		if !a.user.IsHR() {
			fmt.Println("Error: this command requires the HR role")
			return
		}
		emps, err := a.api.Employees(cmd.Context())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(emps) == 0 {
			fmt.Println("No employees found.")
			return
		}

		filter, _ := cmd.Flags().GetString("search")
		filter = strings.ToLower(filter)

		fmt.Printf("%-5s %-10s %-24s %-18s %s\n", "ID", "CODE", "NAME", "DEPARTMENT", "POSITION")
		fmt.Println(strings.Repeat("-", 72))
		for _, e := range emps {
			if filter != "" && !matchesEmployee(e, filter) {
				continue
			}
			fmt.Printf("%-5d %-10s %-24s %-18s %s\n",
				e.ID, e.EmployeeCode, e.Name, e.Department, e.Position)
		}
	}),
}

var employeesShowCmd = &cobra.Command{
	Use:   "show [employee-id]",
	Short: "Show one employee's details",
	Args:  cobra.ExactArgs(1),
	Run: withUser(func(a *app, cmd *cobra.Command, args []string) {
		if !a.user.IsHR() {
			fmt.Println("Error: this command requires the HR role")
			return
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Error: invalid employee id '%s'\n", args[0])
			return
		}
		emp, err := a.api.Employee(cmd.Context(), id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		printEmployee(emp)
	}),
}

var employeesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an employee to the directory",
	Long: `Add an employee (HR only).

Example:
  hrtrack employees add --code EMP-204 --name "Priya Nair" --email priya@example.com --dept Engineering`,
	Run: withUser(func(a *app, cmd *cobra.Command, args []string) {
		if !a.user.IsHR() {
			fmt.Println("Error: this command requires the HR role")
			return
		}
		code, _ := cmd.Flags().GetString("code")
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		if code == "" || name == "" || email == "" {
			fmt.Println("Error: --code, --name and --email are required")
			return
		}
		phone, _ := cmd.Flags().GetString("phone")
		dept, _ := cmd.Flags().GetString("dept")
		position, _ := cmd.Flags().GetString("position")
		joined, _ := cmd.Flags().GetString("joined")

		emp := models.NewEmployee{
			EmployeeCode: code,
			Name:         name,
			Email:        email,
			Phone:        phone,
			Department:   dept,
			Position:     position,
			JoiningDate:  joined,
		}
		if err := a.api.CreateEmployee(cmd.Context(), emp); err != nil {
			fmt.Printf("❌ Failed to add employee: %v\n", err)
			return
		}
		fmt.Printf("✅ Added %s (%s)\n", name, code)
	}),
}

func matchesEmployee(e models.Employee, filter string) bool {
	return strings.Contains(strings.ToLower(e.Name), filter) ||
		strings.Contains(strings.ToLower(e.EmployeeCode), filter) ||
		strings.Contains(strings.ToLower(e.Department), filter) ||
		strings.Contains(strings.ToLower(e.Position), filter)
}

func printEmployee(e *models.Employee) {
	fmt.Printf("%s (%s)\n", e.Name, e.EmployeeCode)
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("%-12s %d\n", "ID:", e.ID)
	fmt.Printf("%-12s %s\n", "Email:", e.Email)
	if e.Phone != "" {
		fmt.Printf("%-12s %s\n", "Phone:", e.Phone)
	}
	fmt.Printf("%-12s %s\n", "Department:", e.Department)
	fmt.Printf("%-12s %s\n", "Position:", e.Position)
	if e.JoiningDate != "" {
		fmt.Printf("%-12s %s\n", "Joined:", e.JoiningDate)
	}
	if e.Status != "" {
		fmt.Printf("%-12s %s\n", "Status:", e.Status)
	}
}

func init() {
	employeesListCmd.Flags().StringP("search", "s", "", "Filter by name, code, department, or position")

	employeesAddCmd.Flags().String("code", "", "Employee code (required)")
	employeesAddCmd.Flags().String("name", "", "Full name (required)")
	employeesAddCmd.Flags().String("email", "", "Email address (required)")
	employeesAddCmd.Flags().String("phone", "", "Phone number")
	employeesAddCmd.Flags().String("dept", "", "Department")
	employeesAddCmd.Flags().String("position", "", "Position/title")
	employeesAddCmd.Flags().String("joined", "", "Joining date (yyyy-mm-dd)")

	employeesCmd.AddCommand(employeesListCmd)
	employeesCmd.AddCommand(employeesShowCmd)
	employeesCmd.AddCommand(employeesAddCmd)
}
