package fake

import (
	"log"
	"time"

	"github.com/estatemap/redk"
	"github.com/pkg/errors"
)

// Main holds the options for running the pipeline over generated rows.
type Main struct {
	Seed  int64 `help:"Random seed. The same seed generates the same rows."`
	Count int   `help:"Number of rows to generate."`
	redk.RunConfig
}

// NewMain gets a new Main with the default configuration.
func NewMain() *Main {
	return &Main{
		Count:     1000,
		RunConfig: redk.NewRunConfig(),
	}
}

// Run generates rows, normalizes them, and emits the accepted records.
func (m *Main) Run() error {
	start := time.Now()
	opts, err := m.PipelineOptions(redk.DefaultAliases())
	if err != nil {
		return err
	}
	records, stats, err := redk.NewPipeline(NewSource(m.Seed, m.Count), opts...).Run()
	if err != nil {
		return errors.Wrap(err, "running pipeline")
	}
	if err := redk.Emit(m.Output, records, m.CellPrecision); err != nil {
		return errors.Wrap(err, "emitting records")
	}
	log.Printf("accepted %d, skipped %d in %s", stats.Accepted, stats.Skipped, time.Since(start))
	return nil
}
