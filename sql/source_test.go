package sql

import (
	"database/sql"
	"database/sql/driver"
	"io"
	"testing"

	"github.com/estatemap/redk"
	"github.com/pkg/errors"
)

// stubDriver serves a canned result set so Source can be tested without a
// database.
type stubDriver struct{}

func (stubDriver) Open(name string) (driver.Conn, error) { return stubConn{}, nil }

type stubConn struct{}

func (stubConn) Prepare(query string) (driver.Stmt, error) { return stubStmt{}, nil }
func (stubConn) Close() error                              { return nil }
func (stubConn) Begin() (driver.Tx, error)                 { return nil, errors.New("not implemented") }

type stubStmt struct{}

func (stubStmt) Close() error  { return nil }
func (stubStmt) NumInput() int { return 0 }
func (stubStmt) Exec(args []driver.Value) (driver.Result, error) {
	return nil, errors.New("not implemented")
}

func (stubStmt) Query(args []driver.Value) (driver.Rows, error) {
	return &stubRows{
		cols: []string{"longitude", "latitude", "year_month", "unit_price", "area", "building_type"},
		data: [][]driver.Value{
			{[]byte("121.5435"), []byte("25.0267"), []byte("11201"), float64(850000), float64(28.5), []byte("住宅大樓")},
			{[]byte("0"), []byte("0"), []byte("11201"), float64(720000), float64(30), []byte("公寓")},
		},
	}, nil
}

type stubRows struct {
	cols []string
	data [][]driver.Value
	i    int
}

func (r *stubRows) Columns() []string { return r.cols }
func (r *stubRows) Close() error      { return nil }
func (r *stubRows) Next(dest []driver.Value) error {
	if r.i >= len(r.data) {
		return io.EOF
	}
	copy(dest, r.data[r.i])
	r.i++
	return nil
}

func init() {
	sql.Register("stub", stubDriver{})
}

func queryStub(t *testing.T) *Source {
	t.Helper()
	db, err := sql.Open("stub", "")
	if err != nil {
		t.Fatalf("opening stub db: %v", err)
	}
	rows, err := db.Query("SELECT whatever")
	if err != nil {
		t.Fatalf("querying: %v", err)
	}
	src, err := NewSource(rows)
	if err != nil {
		t.Fatalf("getting source: %v", err)
	}
	return src
}

func TestSourceRecord(t *testing.T) {
	src := queryStub(t)
	rec, err := src.Record()
	if err != nil {
		t.Fatalf("reading record: %v", err)
	}
	row := rec.(map[string]interface{})
	if row["longitude"] != "121.5435" {
		t.Fatalf("byte column not converted to string: %#v", row["longitude"])
	}
	if row["unit_price"] != float64(850000) {
		t.Fatalf("got %#v", row["unit_price"])
	}

	if _, err := src.Record(); err != nil {
		t.Fatalf("reading second record: %v", err)
	}
	if _, err := src.Record(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	// drained sources stay drained
	if _, err := src.Record(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestSourceThroughPipeline(t *testing.T) {
	src := queryStub(t)
	records, stats, err := redk.NewPipeline(src, redk.OptAliases(Aliases())).Run()
	if err != nil {
		t.Fatalf("running pipeline: %v", err)
	}
	if stats.Accepted != 1 || stats.Skipped != 1 {
		t.Fatalf("got stats %+v", stats)
	}
	r := records[0]
	if r.YearMonth != "2023-01" || r.Position != [2]float64{121.5435, 25.0267} {
		t.Fatalf("got %+v", r)
	}
	if r.BuildingType != "住宅大樓" || r.Area != 28.5 {
		t.Fatalf("got %+v", r)
	}
}
