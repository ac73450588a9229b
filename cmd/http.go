package cmd

import (
	"io"

	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"

	"github.com/estatemap/redk/http"
)

// HTTPMain is wrapped by NewHTTPCommand and only exported for testing purposes.
var HTTPMain *http.Main

// NewHTTPCommand returns a new cobra command wrapping HTTPMain.
func NewHTTPCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	HTTPMain = http.NewMain()
	httpCommand := &cobra.Command{
		Use:   "http",
		Short: "http - accept transaction documents pushed over HTTP",
		Long: `Listens for POSTed JSON transaction documents and emits
validated records as line-delimited JSON once the document limit is
reached.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return HTTPMain.Run()
		},
	}
	flags := httpCommand.Flags()
	err := commandeer.Flags(flags, HTTPMain)
	if err != nil {
		panic(err)
	}
	return httpCommand
}

func init() {
	subcommandFns["http"] = NewHTTPCommand
}
