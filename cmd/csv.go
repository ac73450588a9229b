package cmd

import (
	"io"

	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"

	"github.com/estatemap/redk/csv"
)

// CSVMain is wrapped by NewCSVCommand and only exported for testing purposes.
var CSVMain *csv.Main

// NewCSVCommand returns a new cobra command wrapping CSVMain.
func NewCSVCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	CSVMain = csv.NewMain()
	csvCommand := &cobra.Command{
		Use:   "csv",
		Short: "csv - normalize transaction records from CSV files",
		Long: `Reads one or more CSV files of raw real-estate transaction
data, resolves the canonical fields, and emits the records which pass
validation as line-delimited JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return CSVMain.Run()
		},
	}
	flags := csvCommand.Flags()
	err := commandeer.Flags(flags, CSVMain)
	if err != nil {
		panic(err)
	}
	return csvCommand
}

func init() {
	subcommandFns["csv"] = NewCSVCommand
}
