package commands

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/cardledger/internal/app"
)

func (r *runner) newHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List imported statement files, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.with(cmd, func(a *app.App) error {
				files, err := a.Imports.History(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(files) == 0 {
					fmt.Fprintln(out, mutedStyle.Render("no imported files"))
					return nil
				}

				for _, f := range files {
					fmt.Fprintf(out, "%s  %s  %s  %s  %d payments  %s\n",
						mutedStyle.Render(f.ID.String()),
						f.YearMonth,
						f.FileName,
						f.CardTypeName,
						f.PaymentCount,
						f.ImportedAt.Local().Format(time.DateTime),
					)
				}

				return nil
			})
		},
	}
}

func (r *runner) newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an imported file and its payments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}

			return r.with(cmd, func(a *app.App) error {
				res := a.Imports.DeleteImportedFile(cmd.Context(), id)
				renderLine(cmd.OutOrStdout(), res.Success, id.String(), res.Message)

				if !res.Success {
					return ErrFailed
				}

				return nil
			})
		},
	}
}

func (r *runner) newCardTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "card-types",
		Short: "List card types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.with(cmd, func(a *app.App) error {
				cts, err := a.Imports.CardTypes(cmd.Context())
				if err != nil {
					return err
				}

				for _, ct := range cts {
					status := successStyle.Render("supported")
					if !ct.Supported {
						status = mutedStyle.Render("no parser")
					}

					fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s  %s\n", ct.Code, ct.Name, status)
				}

				return nil
			})
		},
	}
}
