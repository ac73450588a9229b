package redk

import "io"

// Source is the interface for getting raw rows one record at a time.
// Implementations of Source should be thread safe. Record returns io.EOF when
// the source is exhausted.
type Source interface {
	Record() (interface{}, error)
}

// NamedReadCloser is an io.ReadCloser which also knows the name of the thing
// being read (a file name, an object key).
type NamedReadCloser interface {
	io.ReadCloser
	Name() string
}

// RawSource is the interface for getting a series of raw byte streams, such
// as the files in a directory or the objects under an S3 prefix. NextReader
// returns io.EOF when there are no more streams. Implementations should be
// thread safe.
type RawSource interface {
	NextReader() (NamedReadCloser, error)
}

// Geocoder looks up coordinates for a street address. It is consulted only
// when a row carries no usable coordinates of its own, and it must return an
// error when it has no match for the address.
type Geocoder interface {
	Geocode(address string) (lng, lat float64, err error)
}
