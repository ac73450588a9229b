// Package http provides a push-style redk.Source: transaction documents are
// POSTed to a listener as JSON and fed to the pipeline as they arrive.
package http

import (
	"encoding/json"
	"io"
	"log"
	"net"
	"net/http"
	"sync/atomic"

	jsonsrc "github.com/estatemap/redk/json"
	"github.com/pkg/errors"
)

// Source implements the redk.Source interface by listening for HTTP post
// requests and decoding json documents from their bodies.
type Source struct {
	// MaxDocs makes Record report io.EOF after that many documents, which
	// is how a push-fed run ever finishes. 0 means serve forever.
	MaxDocs int
	numDocs int64

	addr     string
	listener net.Listener
	server   *http.Server
	records  chan record
}

// Option is a functional option type for Source.
type Option func(s *Source)

// WithAddr is an option which causes the Source to bind to the given
// address.
func WithAddr(addr string) Option {
	return func(s *Source) {
		s.addr = addr
	}
}

// WithListener is an option which causes the Source to use the given
// listener. It will infer the address from the listener.
func WithListener(l net.Listener) Option {
	return func(s *Source) {
		s.listener = l
		s.addr = l.Addr().String()
	}
}

// WithBuffer is an option which modifies the length of the channel used to
// buffer received documents while they wait to be retrieved by a call to
// Record.
func WithBuffer(n int) Option {
	return func(s *Source) {
		if n > -1 {
			s.records = make(chan record, n)
		}
	}
}

type record struct {
	data interface{}
	err  error
}

// NewSource creates a Source and starts its listener.
func NewSource(opts ...Option) (*Source, error) {
	s := &Source{
		records: make(chan record, 3),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.listener == nil {
		var err error
		s.listener, err = net.Listen("tcp", s.addr)
		if err != nil {
			return nil, errors.Wrap(err, "listening")
		}
	}

	s.server = &http.Server{
		Addr:    s.addr,
		Handler: s,
	}
	go func() {
		err := s.server.Serve(s.listener)
		if err != nil && err != http.ErrServerClosed {
			s.records <- record{err: errors.Wrap(err, "serving")}
		}
		close(s.records)
	}()
	return s, nil
}

// Addr gets the address that the Source is listening on.
func (s *Source) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Record returns the next posted document as a map[string]interface{}.
func (s *Source) Record() (interface{}, error) {
	if s.MaxDocs > 0 && atomic.AddInt64(&s.numDocs, 1) > int64(s.MaxDocs) {
		return nil, io.EOF
	}
	rec, ok := <-s.records
	if !ok {
		return nil, io.EOF
	}
	return rec.data, rec.err
}

// Close shuts the listener down; Record drains whatever was buffered and
// then reports io.EOF.
func (s *Source) Close() error {
	return s.server.Close()
}

// ServeHTTP implements http.Handler. A body may contain any number of
// concatenated JSON documents.
func (s *Source) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		err := errors.Errorf("unsupported method: %v", r.Method)
		log.Println(err)
		http.Error(w, err.Error(), http.StatusMethodNotAllowed)
		return
	}
	dec := json.NewDecoder(r.Body)
	for {
		doc := make(map[string]interface{})
		err := dec.Decode(&doc)
		if err == io.EOF {
			return
		}
		if err != nil {
			err := errors.Wrap(err, "decoding json")
			log.Println(err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonsrc.SplatPosition(doc)
		s.records <- record{data: doc}
	}
}
