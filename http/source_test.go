package http

import (
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
)

func TestSource(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listening: %v", err)
	}
	src, err := NewSource(WithListener(l), WithBuffer(10))
	if err != nil {
		t.Fatalf("getting source: %v", err)
	}
	defer src.Close()

	body := `{"position": [121.5, 25.0], "price": 850000, "yearMonth": "2023-01"}
{"price": 860000, "yearMonth": "2023-02"}`
	resp, err := http.Post("http://"+src.Addr(), "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("posting: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d", resp.StatusCode)
	}

	rec, err := src.Record()
	if err != nil {
		t.Fatalf("reading record: %v", err)
	}
	doc := rec.(map[string]interface{})
	if doc["longitude"] != 121.5 {
		t.Fatalf("position not splatted: %v", doc)
	}
	rec, err = src.Record()
	if err != nil {
		t.Fatalf("reading record: %v", err)
	}
	if rec.(map[string]interface{})["yearMonth"] != "2023-02" {
		t.Fatalf("got %v", rec)
	}
}

func TestSourceRejectsGet(t *testing.T) {
	src, err := NewSource(WithAddr("127.0.0.1:0"))
	if err != nil {
		t.Fatalf("getting source: %v", err)
	}
	defer src.Close()
	resp, err := http.Get("http://" + src.Addr())
	if err != nil {
		t.Fatalf("getting: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("got status %d", resp.StatusCode)
	}
}

func TestSourceMaxDocs(t *testing.T) {
	src, err := NewSource(WithAddr("127.0.0.1:0"), WithBuffer(10))
	if err != nil {
		t.Fatalf("getting source: %v", err)
	}
	defer src.Close()
	src.MaxDocs = 1

	resp, err := http.Post("http://"+src.Addr(), "application/json", strings.NewReader(`{"a": 1}{"a": 2}`))
	if err != nil {
		t.Fatalf("posting: %v", err)
	}
	resp.Body.Close()

	if _, err := src.Record(); err != nil {
		t.Fatalf("reading record: %v", err)
	}
	if _, err := src.Record(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}
