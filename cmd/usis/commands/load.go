package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itzMRZ/usisportal/internal/ui/render"
)

func (c *CLI) newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Preload every configured semester",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outcomes, err := c.app.LoadAll(cmd.Context())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), render.OutcomeLines(outcomes))
			return nil
		},
	}
}
