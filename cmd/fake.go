package cmd

import (
	"io"

	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"

	"github.com/estatemap/redk/fake"
)

// FakeMain is wrapped by NewFakeCommand and only exported for testing purposes.
var FakeMain *fake.Main

// NewFakeCommand returns a new cobra command wrapping FakeMain.
func NewFakeCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	FakeMain = fake.NewMain()
	fakeCommand := &cobra.Command{
		Use:   "fake",
		Short: "fake - run the pipeline over generated transaction data",
		Long: `Generates deterministic pseudo-random raw transaction records
and runs them through the normalization pipeline. Useful for trying
out flags and eyeballing output without real data.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return FakeMain.Run()
		},
	}
	flags := fakeCommand.Flags()
	err := commandeer.Flags(flags, FakeMain)
	if err != nil {
		panic(err)
	}
	return fakeCommand
}

func init() {
	subcommandFns["fake"] = NewFakeCommand
}
