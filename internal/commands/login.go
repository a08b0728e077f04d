package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"hrtrack/internal/api"
	"hrtrack/internal/tui"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the HRMS backend",
	Long: `Log in with your employee id and password. Opens an interactive
prompt unless both --user and --password are given.`,
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		userID, _ := cmd.Flags().GetString("user")
		password, _ := cmd.Flags().GetString("password")

		if password == "" {
			u, p, ok, err := tui.RunLoginTUI(userID)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if !ok {
				fmt.Println("❌ Login cancelled.")
				return
			}
			userID, password = u, p
		}

		resp, err := a.api.Login(cmd.Context(), userID, password)
		if err != nil {
			var apiErr *api.APIError
			if errors.As(err, &apiErr) {
				fmt.Printf("❌ Login failed: %s\n", apiErr.Error())
			} else {
				fmt.Printf("❌ Login failed: %v\n", err)
			}
			return
		}

		user := resp.User()
		if err := a.store.SaveCredentials(resp.Token, user); err != nil {
			fmt.Printf("Error: failed to save credentials: %v\n", err)
			return
		}
		a.user = &user

		fmt.Printf("✅ Logged in as %s (%s)\n", user.EmployeeName, user.Role)

		// Identity changed: rebuild the session for the new user.
		a.tracker.Reset()
		a.tracker.Bootstrap(a.userID())
		a.tracker.Sync(cmd.Context())
		printSession(a.tracker.Session())
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the stored token",
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		if a.user == nil {
			fmt.Println("Not logged in.")
			return
		}
		// Credentials only; a persisted open shift survives a re-login.
		if err := a.store.ClearCredentials(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		a.tracker.Reset()
		fmt.Println("✅ Logged out.")
	}),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		if a.user == nil {
			fmt.Println("Not logged in.")
			return
		}
		fmt.Printf("%s (%s), employee #%d, role %s\n",
			a.user.EmployeeName, a.user.EmployeeCode, a.user.EmployeeID, a.user.Role)
	}),
}

func init() {
	loginCmd.Flags().StringP("user", "u", "", "Employee id or code")
	loginCmd.Flags().StringP("password", "p", "", "Password (prefer the interactive prompt)")
}
