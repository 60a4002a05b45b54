package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joefazee/qrmenu/app/products"
	"github.com/joefazee/qrmenu/internal/deps"
)

func newActivateProductsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "activate-products",
		Short: "Mark every product as active",
		Long: `Sets is_active on every stored product in one bulk write. Other fields,
including updated_at, are left as they are. Running it again is harmless.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd.Context(), flags, func(c *deps.Container) error {
				svc := c.GetService(products.ServiceKey).(products.Service)
				res, err := svc.ActivateAll(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "activated %d products\n", res.Updated)
				return nil
			})
		},
	}
}
