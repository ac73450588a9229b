package s3

import (
	"io/ioutil"
	"strings"
	"testing"
)

func TestMainDefaults(t *testing.T) {
	m := NewMain()
	if m.Format != "csv" {
		t.Fatalf("got format %q", m.Format)
	}
	if m.Region == "" {
		t.Fatal("no default region")
	}
	if m.MinPrice >= m.MaxPrice {
		t.Fatalf("bad default bounds: %v >= %v", m.MinPrice, m.MaxPrice)
	}
}

func TestObjReader(t *testing.T) {
	r := &objReader{name: "data/2023.csv", body: ioutil.NopCloser(strings.NewReader("hello"))}
	if r.Name() != "data/2023.csv" {
		t.Fatalf("got %q", r.Name())
	}
	data, err := ioutil.ReadAll(r)
	if err != nil {
		t.Fatalf("reading: %v", err)
	}
	if string(data) != "hello" {
		t.Fatalf("got %q", data)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("closing: %v", err)
	}
}
