package cmd

import (
	"io"

	"github.com/jaffee/commandeer"
	"github.com/spf13/cobra"

	"github.com/estatemap/redk/aws/s3"
)

// S3Main is wrapped by NewS3Command and only exported for testing purposes.
var S3Main *s3.Main

// NewS3Command returns a new cobra command wrapping S3Main.
func NewS3Command(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	S3Main = s3.NewMain()
	s3Command := &cobra.Command{
		Use:   "s3",
		Short: "s3 - normalize transaction data stored in an S3 bucket",
		Long: `Lists the objects under a bucket and prefix, reads each one as
CSV or JSON transaction data, and emits validated records as
line-delimited JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return S3Main.Run()
		},
	}
	flags := s3Command.Flags()
	err := commandeer.Flags(flags, S3Main)
	if err != nil {
		panic(err)
	}
	return s3Command
}

func init() {
	subcommandFns["s3"] = NewS3Command
}
