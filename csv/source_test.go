package csv

import (
	"io"
	"io/ioutil"
	"testing"

	"github.com/estatemap/redk"
	"github.com/estatemap/redk/file"
)

func mustTempDir(t *testing.T, prefix string) string {
	t.Helper()
	d, err := ioutil.TempDir("", prefix)
	if err != nil {
		t.Fatal("getting temp dir")
	}
	return d
}

func mustFile(t *testing.T, dir, contents string) (name string) {
	t.Helper()
	f, err := ioutil.TempFile(dir, "")
	if err != nil {
		t.Fatalf("getting temp file: %v", err)
	}
	if _, err = io.WriteString(f, contents); err != nil {
		t.Fatalf("writing contents: %v", err)
	}
	f.Close()
	return f.Name()
}

func TestSource(t *testing.T) {
	d := mustTempDir(t, "testcsvsource")

	mustFile(t, d, `longitude,latitude,price,yearMonth
121.5,25.0,850000,112年01月
121.6,25.1,860000,112年02月`)
	mustFile(t, d, `longitude,latitude,price,yearMonth
121.7,25.2,870000,112年03月
`)

	rs, err := file.NewRawSource(d)
	if err != nil {
		t.Fatalf("getting raw source: %v", err)
	}
	s := NewSourceFromRawSource(rs)

	n := 0
	rec, err := s.Record()
	for ; err != io.EOF; rec, err = s.Record() {
		if err != nil {
			t.Fatalf("reading record: %v", err)
		}
		row := rec.(map[string]string)
		for _, key := range []string{"longitude", "latitude", "price", "yearMonth"} {
			if _, ok := row[key]; !ok {
				t.Fatalf("key %s not found in %v", key, row)
			}
		}
		n++
	}
	if n != 3 {
		t.Fatalf("got %d rows, want 3", n)
	}
}

func TestSourceEmptyCellsAbsent(t *testing.T) {
	d := mustTempDir(t, "testcsvempty")
	mustFile(t, d, `price,area,address
850000,,somewhere
,28.5,`)

	rs, err := file.NewRawSource(d)
	if err != nil {
		t.Fatalf("getting raw source: %v", err)
	}
	s := NewSourceFromRawSource(rs)

	rec, err := s.Record()
	if err != nil {
		t.Fatalf("reading record: %v", err)
	}
	row := rec.(map[string]string)
	if _, ok := row["area"]; ok {
		t.Fatalf("empty cell should be absent: %v", row)
	}
	rec, err = s.Record()
	if err != nil {
		t.Fatalf("reading record: %v", err)
	}
	row = rec.(map[string]string)
	if _, ok := row["price"]; ok {
		t.Fatalf("empty cell should be absent: %v", row)
	}
	if row["area"] != "28.5" {
		t.Fatalf("got %v", row)
	}
}

func TestSourceBadHeader(t *testing.T) {
	d := mustTempDir(t, "testcsvbadheader")
	mustFile(t, d, "price,price\n1,2")

	rs, err := file.NewRawSource(d)
	if err != nil {
		t.Fatalf("getting raw source: %v", err)
	}
	if _, err := NewSourceFromRawSource(rs).Record(); err == nil || err == io.EOF {
		t.Fatalf("expected header error, got %v", err)
	}
}

func TestSourceThroughPipeline(t *testing.T) {
	d := mustTempDir(t, "testcsvpipeline")
	mustFile(t, d, `經度,緯度,交易年月日,單價元平方公尺,建物型態
121.5435,25.0267,112年01月05日,850000,住宅大樓
0,0,112年01月05日,720000,公寓`)

	rs, err := file.NewRawSource(d)
	if err != nil {
		t.Fatalf("getting raw source: %v", err)
	}
	records, stats, err := redk.NewPipeline(NewSourceFromRawSource(rs)).Run()
	if err != nil {
		t.Fatalf("running pipeline: %v", err)
	}
	if stats.Accepted != 1 || stats.Skipped != 1 {
		t.Fatalf("got stats %+v", stats)
	}
	if records[0].YearMonth != "2023-01" || records[0].Price != 850000 {
		t.Fatalf("got %+v", records[0])
	}
}
