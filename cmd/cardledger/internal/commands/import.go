package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/cardledger/internal/app"
	"github.com/MrJamesThe3rd/cardledger/internal/importer"
)

func (r *runner) newImportCommand() *cobra.Command {
	var cardType string

	cmd := &cobra.Command{
		Use:   "import FILE...",
		Short: "Import statement files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				files  []importer.File
				unread []importer.Result
			)

			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					unread = append(unread, importer.Result{
						FileName: filepath.Base(path),
						Message:  fmt.Sprintf("reading file: %v", err),
					})

					continue
				}

				files = append(files, importer.File{Name: filepath.Base(path), Data: data})
			}

			if len(files) == 0 {
				return renderResults(cmd.OutOrStdout(), unread)
			}

			return r.with(cmd, func(a *app.App) error {
				results := a.Imports.ImportFiles(cmd.Context(), files, cardType)
				return renderResults(cmd.OutOrStdout(), append(unread, results...))
			})
		},
	}

	cmd.Flags().StringVar(&cardType, "card-type", defaultCardType, "card type code")

	return cmd
}

func (r *runner) newImportDirCommand() *cobra.Command {
	var cardType string

	cmd := &cobra.Command{
		Use:   "import-dir PATH",
		Short: "Import every statement file in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.with(cmd, func(a *app.App) error {
				return renderResults(cmd.OutOrStdout(), a.Imports.ImportDirectory(cmd.Context(), args[0], cardType))
			})
		},
	}

	cmd.Flags().StringVar(&cardType, "card-type", defaultCardType, "card type code")

	return cmd
}
