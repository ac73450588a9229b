package fake

import (
	"io"
	"reflect"
	"testing"

	"github.com/estatemap/redk"
)

func TestSourceDeterministic(t *testing.T) {
	read := func() []interface{} {
		var rows []interface{}
		s := NewSource(42, 20)
		for {
			rec, err := s.Record()
			if err == io.EOF {
				return rows
			}
			if err != nil {
				t.Fatalf("reading record: %v", err)
			}
			rows = append(rows, rec)
		}
	}
	a, b := read(), read()
	if len(a) != 20 {
		t.Fatalf("got %d rows", len(a))
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different rows")
	}
}

func TestSourceThroughPipeline(t *testing.T) {
	records, stats, err := redk.NewPipeline(NewSource(1, 500)).Run()
	if err != nil {
		t.Fatalf("running pipeline: %v", err)
	}
	if stats.Accepted+stats.Skipped != 500 {
		t.Fatalf("got stats %+v, want 500 total", stats)
	}
	if stats.Accepted == 0 || stats.Skipped == 0 {
		t.Fatalf("generated rows should include both good and bad ones: %+v", stats)
	}
	f := redk.NewFilter()
	for _, r := range records {
		if !f.AdmitPrice(r.Price) {
			t.Fatalf("emitted price %v outside default bounds", r.Price)
		}
		if r.Position[0] == 0 || r.Position[1] == 0 {
			t.Fatalf("emitted zero coordinate: %v", r.Position)
		}
	}
}
