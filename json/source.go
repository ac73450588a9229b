// Package json provides a redk.Source for pre-normalized transaction
// documents. Input is either a stream of JSON objects or one top-level array
// of objects. Because documents claim to be canonical already, they are held
// to a stricter structural gate (Precheck) and resolved with the minimal
// alias set instead of the multilingual defaults.
package json

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/estatemap/redk"
	"github.com/pkg/errors"
)

// Source is a redk.Source decoding documents from a reader.
type Source struct {
	r       io.Reader
	dec     *json.Decoder
	started bool
	inArray bool
}

// NewSource gets a new json source which will decode from the given reader.
func NewSource(r io.Reader) *Source {
	return &Source{
		r:   r,
		dec: json.NewDecoder(r),
	}
}

// Record returns the next document as a map[string]interface{}. A document
// carrying a well-formed two-element position array gets longitude/latitude
// keys splatted in so the resolver can treat it like any other row.
func (s *Source) Record() (interface{}, error) {
	if !s.started {
		if err := s.start(); err != nil {
			return nil, err
		}
	}
	if s.inArray && !s.dec.More() {
		// consume the closing bracket so trailing garbage is an error
		if _, err := s.dec.Token(); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "reading end of array")
		}
		return nil, io.EOF
	}
	doc := map[string]interface{}{}
	if err := s.dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Wrap(err, "decoding document")
	}
	SplatPosition(doc)
	return doc, nil
}

// start peeks at the first token to learn whether the input is one array or
// a bare stream of objects.
func (s *Source) start() error {
	s.started = true
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return errors.Wrap(err, "reading first token")
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			s.inArray = true
			return nil
		case '{':
			// A bare object stream: rebuild the decoder with the consumed
			// brace put back. The old decoder's buffer holds everything read
			// ahead of the underlying reader.
			s.dec = json.NewDecoder(io.MultiReader(newDelimReader('{'), s.dec.Buffered(), s.r))
			return nil
		}
	}
	return errors.Errorf("input must be an object or an array, got %v", tok)
}

func newDelimReader(d byte) io.Reader {
	return &delimReader{d: d}
}

type delimReader struct {
	d    byte
	read bool
}

func (r *delimReader) Read(p []byte) (int, error) {
	if r.read || len(p) == 0 {
		return 0, io.EOF
	}
	p[0] = r.d
	r.read = true
	return 1, nil
}

// SplatPosition copies a well-formed position pair into longitude/latitude
// keys so the resolver can treat the document like any other row. Malformed
// pairs are left alone for Precheck to reject. Non-file document sources
// (kafka, http) use it too.
func SplatPosition(doc map[string]interface{}) {
	pos, ok := doc["position"].([]interface{})
	if !ok || len(pos) != 2 {
		return
	}
	if _, ok := doc["longitude"]; !ok {
		doc["longitude"] = pos[0]
	}
	if _, ok := doc["latitude"]; !ok {
		doc["latitude"] = pos[1]
	}
}

type rawSourceSource struct {
	rs redk.RawSource

	mu sync.Mutex
	s  *Source
}

// NewSourceFromRawSource returns a redk.Source decoding documents from each
// reader rs produces. Record is serialized with a mutex, so it may be shared
// by concurrent pipeline workers.
func NewSourceFromRawSource(rs redk.RawSource) redk.Source {
	return &rawSourceSource{rs: rs}
}

func (r *rawSourceSource) Record() (interface{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.record()
}

func (r *rawSourceSource) record() (rec interface{}, err error) {
	if r.s == nil {
		reader, err := r.rs.NextReader()
		if err != nil {
			return nil, err
		}
		r.s = NewSource(reader)
	}
	rec, err = r.s.Record()
	if err == io.EOF {
		r.s = nil
		return r.record()
	}
	return rec, err
}

// Aliases is the minimal alias set for document input: canonical names only,
// no multilingual lookup.
func Aliases() redk.AliasConfig {
	cfg := make(redk.AliasConfig, len(redk.Fields))
	for _, f := range redk.Fields {
		cfg[f] = []string{string(f)}
	}
	return cfg
}

// Precheck is the structural gate for document rows: a two-element
// coordinate pair and non-empty price and yearMonth must be present before
// the row may enter validation. Tabular sources get no such gate because
// aliasing and derivation are expected to fill these in; canonical input has
// no excuse.
func Precheck(row redk.Row) error {
	if pos, ok := row.Get("position"); ok {
		pair, isPair := pos.([]interface{})
		if !isPair || len(pair) != 2 {
			return errors.Errorf("position must be a two-element array, got %v", pos)
		}
	} else {
		if _, ok := row.Get("longitude"); !ok {
			return errors.New("document has no position")
		}
		if _, ok := row.Get("latitude"); !ok {
			return errors.New("document has no position")
		}
	}
	for _, key := range []string{"price", "yearMonth"} {
		v, ok := row.Get(key)
		if !ok || v == nil {
			return errors.Errorf("document has no %s", key)
		}
		if s, isStr := v.(string); isStr && s == "" {
			return errors.Errorf("document has empty %s", key)
		}
	}
	return nil
}
