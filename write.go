package redk

import (
	"encoding/json"
	"io"
	"os"

	"github.com/estatemap/redk/geohash"
	"github.com/pkg/errors"
)

// WriteRecords writes records to w as line-delimited JSON. When cellPrecision
// is positive each line additionally carries the record's geohash cell key,
// which saves the visualization consumer from computing cells itself.
func WriteRecords(w io.Writer, records []Transaction, cellPrecision int) error {
	enc := json.NewEncoder(w)
	for _, t := range records {
		var v interface{} = t
		if cellPrecision > 0 {
			v = struct {
				Transaction
				Cell string `json:"cell"`
			}{t, geohash.Key(t.Position[1], t.Position[0], cellPrecision)}
		}
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encoding record")
		}
	}
	return nil
}

// Emit writes records to the named file, or to stdout when path is empty or
// "-".
func Emit(path string, records []Transaction, cellPrecision int) error {
	if path == "" || path == "-" {
		return WriteRecords(os.Stdout, records, cellPrecision)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := WriteRecords(f, records, cellPrecision); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
