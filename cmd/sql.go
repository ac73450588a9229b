package cmd

import (
	"io"

	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"

	// register the mysql driver for the default --driver value.
	_ "github.com/go-sql-driver/mysql"

	"github.com/estatemap/redk/sql"
)

// SQLMain is wrapped by NewSQLCommand and only exported for testing purposes.
var SQLMain *sql.Main

// NewSQLCommand returns a new cobra command wrapping SQLMain.
func NewSQLCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	SQLMain = sql.NewMain()
	sqlCommand := &cobra.Command{
		Use:   "sql",
		Short: "sql - normalize transaction rows from a SQL query",
		Long: `Runs a query against a relational database and treats each
result row as a raw transaction record. Column names are matched
against the canonical aliases plus their snake_case forms.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return SQLMain.Run()
		},
	}
	flags := sqlCommand.Flags()
	err := commandeer.Flags(flags, SQLMain)
	if err != nil {
		panic(err)
	}
	return sqlCommand
}

func init() {
	subcommandFns["sql"] = NewSQLCommand
}
