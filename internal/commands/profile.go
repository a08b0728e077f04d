package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile",
	Run: withUser(func(a *app, cmd *cobra.Command, args []string) {
		emp, err := a.api.MyProfile(cmd.Context())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		printEmployee(emp)
	}),
}
