package file

import (
	"io"
	"io/ioutil"
	"testing"
)

func TestRawSourceDir(t *testing.T) {
	d, err := ioutil.TempDir("", "testrawsource")
	if err != nil {
		t.Fatal("getting temp dir")
	}
	for _, contents := range []string{"one", "two"} {
		f, err := ioutil.TempFile(d, "")
		if err != nil {
			t.Fatalf("getting temp file: %v", err)
		}
		if _, err := io.WriteString(f, contents); err != nil {
			t.Fatalf("writing contents: %v", err)
		}
		f.Close()
	}

	rs, err := NewRawSource(d)
	if err != nil {
		t.Fatalf("getting raw source: %v", err)
	}

	n := 0
	for {
		r, err := rs.NextReader()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("getting reader: %v", err)
		}
		data, err := ioutil.ReadAll(r)
		if err != nil {
			t.Fatalf("reading: %v", err)
		}
		if len(data) == 0 {
			t.Fatalf("empty reader %s", r.Name())
		}
		r.Close()
		n++
	}
	if n != 2 {
		t.Fatalf("got %d readers, want 2", n)
	}
}

func TestRawSourceMissingPath(t *testing.T) {
	if _, err := NewRawSource("/does/not/exist"); err == nil {
		t.Fatal("expected an error")
	}
}
