package sql

import (
	"database/sql"
	"log"
	"time"

	"github.com/estatemap/redk"
	"github.com/pkg/errors"
)

// Main holds the options for normalizing the results of a database query.
type Main struct {
	Driver string `help:"database/sql driver name."`
	DSN    string `help:"Data source name for the database connection."`
	Query  string `help:"Query producing the transaction rows."`
	redk.RunConfig
}

// NewMain returns a new Main.
func NewMain() *Main {
	return &Main{
		Driver:    "mysql",
		Query:     "SELECT longitude, latitude, year_month, unit_price, area, address, building_type, total_price FROM transactions",
		RunConfig: redk.NewRunConfig(),
	}
}

// Run executes the query and normalizes its rows.
func (m *Main) Run() error {
	start := time.Now()
	db, err := sql.Open(m.Driver, m.DSN)
	if err != nil {
		return errors.Wrap(err, "opening database")
	}
	defer db.Close()

	rows, err := db.Query(m.Query)
	if err != nil {
		return errors.Wrap(err, "querying")
	}
	src, err := NewSource(rows)
	if err != nil {
		return errors.Wrap(err, "getting sql source")
	}

	if m.Concurrency > 1 {
		log.Println("sql results are a cursor, processing sequentially")
		m.Concurrency = 1
	}
	opts, err := m.PipelineOptions(Aliases())
	if err != nil {
		return err
	}
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
