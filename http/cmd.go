package http

import (
	"log"
	"time"

	"github.com/estatemap/redk"
	jsonsrc "github.com/estatemap/redk/json"
	"github.com/pkg/errors"
)

// Main holds the options for normalizing documents POSTed over HTTP.
type Main struct {
	Bind    string `help:"Address to listen on for POSTed documents."`
	MaxDocs int    `help:"Stop after this many documents. 0 serves forever."`
	redk.RunConfig
}

// NewMain gets a new Main with the default configuration.
func NewMain() *Main {
	return &Main{
		Bind:      ":12121",
		RunConfig: redk.NewRunConfig(),
	}
}

// Run listens for documents and emits the accepted records once the document
// limit is reached.
func (m *Main) Run() error {
	start := time.Now()
	src, err := NewSource(WithAddr(m.Bind), WithBuffer(1000))
	if err != nil {
		return errors.Wrap(err, "getting http source")
	}
	src.MaxDocs = m.MaxDocs
	defer src.Close()
	log.Printf("listening on %s", src.Addr())

	opts, err := m.PipelineOptions(jsonsrc.Aliases())
	if err != nil {
		return err
	}
	opts = append(opts, redk.OptPrecheck(jsonsrc.Precheck))
	records, stats, err := redk.NewPipeline(src, opts...).Run()
	if err != nil {
		return errors.Wrap(err, "running pipeline")
	}
	if err := redk.Emit(m.Output, records, m.CellPrecision); err != nil {
		return errors.Wrap(err, "emitting records")
	}
	log.Printf("accepted %d, skipped %d in %s", stats.Accepted, stats.Skipped, time.Since(start))
	return nil
}
