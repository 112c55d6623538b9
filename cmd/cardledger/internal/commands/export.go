package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/cardledger/internal/app"
)

func (r *runner) newExportCommand() *cobra.Command {
	var (
		cardType string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "export YEARMONTH",
		Short: "Write a month's payments as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.with(cmd, func(a *app.App) error {
				var w io.Writer = cmd.OutOrStdout()

				if output != "" {
					f, err := os.Create(output)
					if err != nil {
						return fmt.Errorf("creating output file: %w", err)
					}
					defer f.Close()

					w = f
				}

				n, err := a.Export.WriteMonth(cmd.Context(), w, args[0], cardType)
				if err != nil {
					return err
				}

				if output != "" {
					fmt.Fprintln(cmd.ErrOrStderr(), successStyle.Render(fmt.Sprintf("wrote %d payments to %s", n, output)))
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&cardType, "card-type", "", "card type code (all when empty)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout when empty)")

	return cmd
}
