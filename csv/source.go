// Package csv provides a redk.Source over delimited files with a header
// line. Each data line becomes a map of header name to cell value.
package csv

import (
	"encoding/csv"
	"io"
	"sync"

	"github.com/estatemap/redk"
	"github.com/pkg/errors"
)

// Source reads header-mapped rows from each reader a redk.RawSource
// produces. Every file must carry its own header line. Record is serialized
// with a mutex, so a Source may be shared by concurrent pipeline workers.
type Source struct {
	rs redk.RawSource

	mu     sync.Mutex
	cur    redk.NamedReadCloser
	rdr    *csv.Reader
	header []string
}

// NewSourceFromRawSource returns a Source reading delimited rows from rs.
func NewSourceFromRawSource(rs redk.RawSource) *Source {
	return &Source{
		rs: rs,
	}
}

// Record returns the next row as a map[string]string, moving to the next
// reader when the current one is exhausted, and io.EOF when there are no
// more.
func (s *Source) Record() (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		if s.cur == nil {
			cur, err := s.rs.NextReader()
			if err != nil {
				return nil, err // io.EOF here means the whole source is done
			}
			s.cur = cur
			s.rdr = csv.NewReader(cur)
			s.rdr.FieldsPerRecord = -1
			s.rdr.TrimLeadingSpace = true
			header, err := s.rdr.Read()
			if err != nil {
				s.closeCurrent()
				return nil, errors.Wrapf(err, "reading header of %s", cur.Name())
			}
			if err := validateHeader(header); err != nil {
				s.closeCurrent()
				return nil, errors.Wrapf(err, "validating header of %s", cur.Name())
			}
			s.header = header
		}
		row, err := s.rdr.Read()
		if err == io.EOF {
			s.closeCurrent()
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", s.cur.Name())
		}
		if empty(row) {
			continue
		}
		return parseRecord(s.header, row), nil
	}
}

func (s *Source) closeCurrent() {
	if s.cur != nil {
		s.cur.Close()
	}
	s.cur = nil
	s.rdr = nil
	s.header = nil
}

func validateHeader(header []string) error {
	fields := make(map[string]int)
	for i, h := range header {
		if h == "" {
			return errors.Errorf("header contains empty string at %d: %v", i, header)
		}
		if pos, exists := fields[h]; exists {
			return errors.Errorf("%s appeared at both %d and %d in header", h, pos, i)
		}
		fields[h] = i
	}
	return nil
}

// parseRecord maps header names to cell values, dropping empty cells so the
// resolver sees them as absent. Cells beyond the header are ignored.
func parseRecord(header []string, row []string) map[string]string {
	rec := make(map[string]string, len(header))
	for i, h := range header {
		if i >= len(row) || row[i] == "" {
			continue
		}
		rec[h] = row[i]
	}
	return rec
}

func empty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
