// Package commands implements the cardledger command line.
package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/cardledger/internal/app"
)

const defaultCardType = "yodobashi"

// ErrFailed is returned when at least one result was unsuccessful.
var ErrFailed = errors.New("one or more operations failed")

// Opener builds the application for a command run.
type Opener func(ctx context.Context) (*app.App, error)

type runner struct {
	open Opener
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(open Opener) *cobra.Command {
	r := &runner{open: open}

	rootCmd := &cobra.Command{
		Use:   "cardledger",
		Short: "Import credit card statements and review spending",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		r.newImportCommand(),
		r.newImportDirCommand(),
		r.newHistoryCommand(),
		r.newDeleteCommand(),
		r.newCardTypesCommand(),
		r.newExportCommand(),
	)

	return rootCmd
}

// with opens the application for the duration of fn.
func (r *runner) with(cmd *cobra.Command, fn func(a *app.App) error) error {
	a, err := r.open(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(a)
}
