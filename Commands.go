package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"io"
)

// NewRootCommand builds the sheetcalc command tree writing results to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sheetcalc",
		Short:         "Evaluate tabular spreadsheets",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(newRenderCommand(out), newGetCommand(out), newServeCommand())

	return rootCmd
}

func newRenderCommand(out io.Writer) *cobra.Command {
	var sheetName string

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Print every cell of a sheet evaluated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spreadsheet, err := LoadSpreadsheetFile(args[0], sheetName)
			if err != nil {
				return err
			}

			rendered, err := spreadsheet.Render()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(out, rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&sheetName, "sheet", "", "Workbook sheet to read from an .xlsx file (default: first sheet)")

	return cmd
}

func newGetCommand(out io.Writer) *cobra.Command {
	var sheetName string

	cmd := &cobra.Command{
		Use:   "get FILE CELL",
		Short: "Print the displayed value of one cell",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spreadsheet, err := LoadSpreadsheetFile(args[0], sheetName)
			if err != nil {
				return err
			}

			value, err := spreadsheet.Get(args[1])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(out, value)
			return err
		},
	}

	cmd.Flags().StringVar(&sheetName, "sheet", "", "Workbook sheet to read from an .xlsx file (default: first sheet)")

	return cmd
}

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the sheet HTTP API",
		Args:  cobra.NoArgs,
	}

	databaseFilePath := cmd.Flags().String("db", "", "bbolt database file (env "+DatabaseFilePathEnv+")")
	listenAddress := cmd.Flags().String("listen", "", "listen address (env "+ListenAddressEnv+", default "+DefaultListenAddress+")")
	workers := cmd.Flags().Int("workers", 0, "webhook sender workers (env "+WebhookWorkersCountEnv+")")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		config, err := LoadConfig()
		if err != nil {
			return err
		}

		if *databaseFilePath != "" {
			config.DatabaseFilePath = *databaseFilePath
		}
		if *listenAddress != "" {
			config.ListenAddress = *listenAddress
		}
		if *workers > 0 {
			config.WebhookWorkersCount = *workers
		}

		return RunApp(config)
	}

	return cmd
}
