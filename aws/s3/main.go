package s3

import (
	"log"
	"time"

	"github.com/estatemap/redk"
	"github.com/estatemap/redk/csv"
	"github.com/estatemap/redk/json"
	"github.com/pkg/errors"
)

// Main contains the configuration for normalizing objects in an S3 bucket.
type Main struct {
	Bucket string `help:"S3 bucket to read objects from."`
	Prefix string `help:"Only read objects matching this prefix."`
	Region string `help:"AWS region of the bucket."`
	Format string `help:"Object format: 'csv' or 'json'."`
	redk.RunConfig
}

// NewMain gets a new Main with the default configuration.
func NewMain() *Main {
	return &Main{
		Region:    "us-east-1",
		Format:    "csv",
		RunConfig: redk.NewRunConfig(),
	}
}

// Run normalizes every object under Bucket/Prefix and emits the accepted
// records.
func (m *Main) Run() error {
	start := time.Now()
	rs, err := NewRawSource(m.Region, m.Bucket, m.Prefix)
	if err != nil {
		return errors.Wrap(err, "getting raw s3 source")
	}

	var src redk.Source
	aliases := redk.DefaultAliases()
	var extra []redk.Option
	switch m.Format {
	case "csv":
		src = csv.NewSourceFromRawSource(rs)
	case "json":
		src = json.NewSourceFromRawSource(rs)
		aliases = json.Aliases()
		extra = append(extra, redk.OptPrecheck(json.Precheck))
	default:
		return errors.Errorf("unsupported format: '%v'", m.Format)
	}

	opts, err := m.PipelineOptions(aliases)
	if err != nil {
		return err
	}
	records, stats, err := redk.NewPipeline(src, append(opts, extra...)...).Run()
	if err != nil {
		return errors.Wrap(err, "running pipeline")
	}
	if err := redk.Emit(m.Output, records, m.CellPrecision); err != nil {
		return errors.Wrap(err, "emitting records")
	}
	log.Printf("accepted %d, skipped %d in %s", stats.Accepted, stats.Skipped, time.Since(start))
	return nil
}
