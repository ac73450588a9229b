package cmd

import (
	"io"

	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"

	"github.com/estatemap/redk/json"
)

// JSONMain is wrapped by NewJSONCommand and only exported for testing purposes.
var JSONMain *json.Main

// NewJSONCommand returns a new cobra command wrapping JSONMain.
func NewJSONCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	JSONMain = json.NewMain()
	jsonCommand := &cobra.Command{
		Use:   "json",
		Short: "json - normalize transaction documents from JSON files",
		Long: `Reads files containing JSON transaction documents (either a
stream of objects or a top-level array), applies the document
structural checks, and emits validated records as line-delimited
JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return JSONMain.Run()
		},
	}
	flags := jsonCommand.Flags()
	err := commandeer.Flags(flags, JSONMain)
	if err != nil {
		panic(err)
	}
	return jsonCommand
}

func init() {
	subcommandFns["json"] = NewJSONCommand
}
