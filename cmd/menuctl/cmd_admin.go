package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joefazee/qrmenu/app/admin"
	"github.com/joefazee/qrmenu/internal/deps"
)

func newCreateAdminCmd(flags *globalFlags) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Add an admin account for the panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd.Context(), flags, func(c *deps.Container) error {
				res, err := admin.GetService(c).CreateAdmin(cmd.Context(), &admin.CreateAdminRequest{
					Email:    email,
					Password: password,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", res.Email, res.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Admin email")
	cmd.Flags().StringVar(&password, "password", "", "Admin password, at least 6 characters")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
