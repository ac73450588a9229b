package json

import (
	"log"
	"time"

	"github.com/estatemap/redk"
	"github.com/estatemap/redk/file"
	"github.com/pkg/errors"
)

// Main contains the configuration for normalizing document files.
type Main struct {
	Path string `help:"File or directory path to read documents from."`
	redk.RunConfig
}

// NewMain gets a new Main with the default configuration.
func NewMain() *Main {
	return &Main{
		RunConfig: redk.NewRunConfig(),
	}
}

// Run normalizes every document under Path and emits the accepted records.
func (m *Main) Run() error {
	start := time.Now()
	rs, err := file.NewRawSource(m.Path)
	if err != nil {
		return errors.Wrap(err, "getting raw source")
	}
	opts, err := m.PipelineOptions(Aliases())
	if err != nil {
		return err
	}
	opts = append(opts, redk.OptPrecheck(Precheck))
	records, stats, err := redk.NewPipeline(NewSourceFromRawSource(rs), opts...).Run()
	if err != nil {
		return errors.Wrap(err, "running pipeline")
	}
	if err := redk.Emit(m.Output, records, m.CellPrecision); err != nil {
		return errors.Wrap(err, "emitting records")
	}
	log.Printf("accepted %d, skipped %d in %s", stats.Accepted, stats.Skipped, time.Since(start))
	return nil
}
