package redk

import (
	"io"
	"log"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Pipeline drains a Source, normalizing each raw row into a Transaction.
// Rows that cannot be normalized or that fail the filter are counted and
// dropped; only a failure of the Source itself aborts a run.
type Pipeline struct {
	src         Source
	aliases     AliasConfig
	filter      Filter
	geocoder    Geocoder
	precheck    func(Row) error
	concurrency int
}

// Option is a functional option for Pipeline.
type Option func(p *Pipeline)

// OptAliases sets the alias configuration, replacing the defaults. Callers
// wanting a partial override should merge over DefaultAliases (or the source
// package's alias set) themselves.
func OptAliases(a AliasConfig) Option {
	return func(p *Pipeline) {
		p.aliases = a
	}
}

// OptFilter sets the acceptance constraints.
func OptFilter(f Filter) Option {
	return func(p *Pipeline) {
		p.filter = f
	}
}

// OptGeocoder sets a geocoder to consult when a row has no usable
// coordinates but does have an address. Without one such rows are skipped.
func OptGeocoder(g Geocoder) Option {
	return func(p *Pipeline) {
		p.geocoder = g
	}
}

// OptPrecheck installs a structural check run on every row before the
// normalization stages. Used by the document source, whose input claims to be
// canonical already and is held to a stricter gate.
func OptPrecheck(fn func(Row) error) Option {
	return func(p *Pipeline) {
		p.precheck = fn
	}
}

// OptConcurrency sets the number of worker goroutines processing rows. Rows
// are independent, so this is safe with any thread-safe Source, but with more
// than one worker the output order follows completion order rather than
// input order.
func OptConcurrency(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// NewPipeline returns a Pipeline reading from src with the default aliases
// and filter, processing rows sequentially.
func NewPipeline(src Source, opts ...Option) *Pipeline {
	p := &Pipeline{
		src:         src,
		aliases:     DefaultAliases(),
		filter:      NewFilter(),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run drains the source and returns the accepted records in input order
// (completion order when concurrent) along with the run counts. A source
// error aborts the run and returns no partial output; row-level problems only
// ever increment Stats.Skipped.
func (p *Pipeline) Run() ([]Transaction, Stats, error) {
	if p.concurrency > 1 {
		return p.runConcurrent()
	}
	var records []Transaction
	var stats Stats
	for {
		rec, err := p.src.Record()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, Stats{}, errors.Wrap(err, "reading record")
		}
		t, err := p.process(rec)
		if err != nil {
			stats.Skipped++
			log.Printf("skipping row: %v", err)
			continue
		}
		records = append(records, *t)
		stats.Accepted++
	}
	return records, stats, nil
}

func (p *Pipeline) runConcurrent() ([]Transaction, Stats, error) {
	var (
		mu      sync.Mutex
		records []Transaction
		runErr  error
		skipped int64
	)
	wg := sync.WaitGroup{}
	for i := 0; i < p.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				rec, err := p.src.Record()
				if err == io.EOF {
					return
				}
				if err != nil {
					mu.Lock()
					if runErr == nil {
						runErr = errors.Wrap(err, "reading record")
					}
					mu.Unlock()
					return
				}
				t, err := p.process(rec)
				if err != nil {
					atomic.AddInt64(&skipped, 1)
					log.Printf("skipping row: %v", err)
					continue
				}
				mu.Lock()
				records = append(records, *t)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if runErr != nil {
		return nil, Stats{}, runErr
	}
	return records, Stats{Accepted: int64(len(records)), Skipped: atomic.LoadInt64(&skipped)}, nil
}

// process runs the full stage sequence for one raw record. A panic while
// processing a row is recovered and reported as that row's error so one bad
// row can never take down the run.
func (p *Pipeline) process(rec interface{}) (t *Transaction, err error) {
	defer func() {
		if r := recover(); r != nil {
			t, err = nil, errors.Errorf("panic processing row: %v", r)
		}
	}()

	row, err := AsRow(rec)
	if err != nil {
		return nil, err
	}
	if p.precheck != nil {
		if err := p.precheck(row); err != nil {
			return nil, errors.Wrap(err, "document precheck")
		}
	}

	ymv, ok := Resolve(row, p.aliases[YearMonth])
	if !ok {
		return nil, errors.New("no year-month field")
	}
	yms, ok := StringValue(ymv)
	if !ok {
		return nil, errors.Errorf("unusable year-month value %v", ymv)
	}
	ym, err := NormalizeYearMonth(yms)
	if err != nil {
		return nil, err
	}

	price, err := DerivePrice(row, p.aliases)
	if err != nil {
		return nil, err
	}
	if !p.filter.AdmitPrice(price) {
		return nil, errors.Errorf("price %v outside [%v, %v]", price, p.filter.MinPrice, p.filter.MaxPrice)
	}

	address := p.stringField(row, Address)
	lng, lngOK := coordinate(row, p.aliases[Longitude])
	lat, latOK := coordinate(row, p.aliases[Latitude])
	if !lngOK || !latOK {
		if p.geocoder == nil || address == "" {
			return nil, errors.New("missing coordinates")
		}
		lng, lat, err = p.geocoder.Geocode(address)
		if err != nil {
			return nil, errors.Wrap(err, "geocoding")
		}
	}

	bt := p.stringField(row, BuildingType)
	if !p.filter.AdmitBuildingType(bt) {
		return nil, errors.Errorf("building type %q not in allow-list", bt)
	}

	return &Transaction{
		Position:     [2]float64{lng, lat},
		Price:        price,
		YearMonth:    ym,
		Area:         p.floatField(row, Area),
		Address:      address,
		BuildingType: bt,
		TotalPrice:   p.floatField(row, TotalPrice),
	}, nil
}

// coordinate resolves one coordinate field. Absent, unparseable, non-finite,
// and exactly-zero values all count as missing - a populated record never has
// a coordinate of exactly zero, so zero means the source had nothing.
// Downstream behavior depends on this, don't "fix" it.
func coordinate(row Row, aliases []string) (float64, bool) {
	v, ok := Resolve(row, aliases)
	if !ok {
		return 0, false
	}
	f, err := FloatValue(v)
	if err != nil || f == 0 {
		return 0, false
	}
	return f, true
}

func (p *Pipeline) stringField(row Row, f Field) string {
	v, ok := Resolve(row, p.aliases[f])
	if !ok {
		return ""
	}
	s, _ := StringValue(v)
	return s
}

// floatField resolves an optional numeric field, defaulting to zero when the
// field is absent, unparseable, or negative.
func (p *Pipeline) floatField(row Row, f Field) float64 {
	v, ok := Resolve(row, p.aliases[f])
	if !ok {
		return 0
	}
	n, err := FloatValue(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
