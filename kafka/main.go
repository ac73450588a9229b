package kafka

import (
	"log"
	"time"

	"github.com/estatemap/redk"
	jsonsrc "github.com/estatemap/redk/json"
	"github.com/pkg/errors"
)

// Main holds the options for normalizing transaction documents from Kafka.
type Main struct {
	Hosts   []string `help:"Comma separated list of Kafka hosts and ports."`
	Topics  []string `help:"Comma separated list of Kafka topics."`
	Group   string   `help:"Kafka consumer group."`
	MaxMsgs int      `help:"Stop after this many messages. 0 consumes forever."`
	redk.RunConfig
}

// NewMain returns a new Main.
func NewMain() *Main {
	return &Main{
		Hosts:     []string{"localhost:9092"},
		Topics:    []string{"transactions"},
		Group:     "redk0",
		RunConfig: redk.NewRunConfig(),
	}
}

// Run consumes documents from Kafka and emits the accepted records once the
// message limit is reached.
func (m *Main) Run() error {
	start := time.Now()
	src := NewSource()
	src.Hosts = m.Hosts
	src.Topics = m.Topics
	src.Group = m.Group
	src.MaxMsgs = m.MaxMsgs
	if err := src.Open(); err != nil {
		return errors.Wrap(err, "opening kafka source")
	}
	defer src.Close()

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
