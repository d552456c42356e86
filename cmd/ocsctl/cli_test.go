package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWithStderr(t, stdin, args...)
	return out, err
}

func runWithStderr(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestCLI_URL(t *testing.T) {
	out, err := run(t, "", "url",
		"--service-url", "http://search:9000",
		"--param", "q=red shoes",
		"--param", "fq=brand:Nike",
		"--param", "fq=size:10",
		"--field", "id,title",
		"--metadata", "found",
		"--site", "bcs",
		"--header", "X-Preview=true")
	if err != nil {
		t.Fatalf("url cmd failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := "http://search:9000/v1/products?q=red+shoes&fq=brand%3ANike%2Csize%3A10&fields=id%2Ctitle&metadata=found&site=bcs"
	if lines[0] != want {
		t.Fatalf("unexpected url:\n got %s\nwant %s", lines[0], want)
	}
	if len(lines) != 2 || lines[1] != "X-Preview: true" {
		t.Fatalf("unexpected header output: %q", lines[1:])
	}
}

func TestCLI_URL_BadPair(t *testing.T) {
	if _, err := run(t, "", "url", "--param", "novalue"); err == nil {
		t.Fatal("expected error for malformed --param")
	}
}

func TestCLI_SummaryFromFileAndStdin(t *testing.T) {
	doc := `{"listPrice":{"min":9.99,"max":19.99},"colorFamily":{"families":"[Red, Blue]"},"brand":{"buckets":{"Nike":5}}}`
	path := filepath.Join(t.TempDir(), "summary.json")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, args := range [][]string{
		{"summary", "--file", path, "--buckets", "brand,category"},
		{"summary", "--buckets", "brand,category"},
	} {
		out, err := run(t, doc, args...)
		if err != nil {
			t.Fatalf("summary cmd failed: %v", err)
		}
		var got map[string]any
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatalf("invalid json output: %v\n%s", err, out)
		}
		if got["minListPrice"] != 9.99 || got["minSalePrice"] != nil {
			t.Fatalf("unexpected prices: %v", got)
		}
		fams, _ := got["colorFamilies"].([]any)
		if len(fams) != 2 || fams[0] != "Red" || fams[1] != "Blue" {
			t.Fatalf("unexpected color families: %v", got["colorFamilies"])
		}
		b, _ := got["buckets"].(map[string]any)
		if b["category"] != nil {
			t.Fatalf("missing buckets must render null: %v", b)
		}
		if brand, _ := b["brand"].(map[string]any); brand["Nike"] != float64(5) {
			t.Fatalf("unexpected brand buckets: %v", b["brand"])
		}
	}
}

func TestCLI_Search(t *testing.T) {
	queries := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries <- r.URL.RawQuery
		_, _ = w.Write([]byte(`{"metadata":{"found":1,"productSummary":{"p1":{"color":{"count":4}}}},"products":[{"id":"p1","title":"Jacket"}]}`))
	}))
	defer srv.Close()

	out, err := run(t, "", "search", "--service-url", srv.URL, "-q", "jacket", "--fq", "brand:Nike", "--site", "bcs")
	if err != nil {
		t.Fatalf("search cmd failed: %v", err)
	}
	if gotQuery := <-queries; gotQuery != "q=jacket&fq=brand%3ANike&metadata=found%2CproductSummary&site=bcs" {
		t.Fatalf("unexpected query %q", gotQuery)
	}
	var got struct {
		Found    int `json:"found"`
		Products []struct {
			ID      string         `json:"id"`
			Summary map[string]any `json:"summary"`
		} `json:"products"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid json output: %v\n%s", err, out)
	}
	if got.Found != 1 || len(got.Products) != 1 || got.Products[0].Summary["colorCount"] != float64(4) {
		t.Fatalf("unexpected search output: %s", out)
	}
}

func TestCLI_SearchFailureLogsStack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "index offline", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, stderr, err := runWithStderr(t, "", "search", "--log-json", "--service-url", srv.URL, "-q", "jacket")
	if err == nil {
		t.Fatal("expected search to fail on 503")
	}

	var entry map[string]any
	for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
		var e map[string]any
		if json.Unmarshal([]byte(line), &e) == nil && e["message"] == "search failed" {
			entry = e
		}
	}
	if entry == nil {
		t.Fatalf("no search failed entry in logs:\n%s", stderr)
	}
	if entry["service"] != "ocsctl" || entry["level"] != "error" {
		t.Fatalf("unexpected log entry: %v", entry)
	}
	if frames, _ := entry["stack"].([]any); len(frames) == 0 {
		t.Fatalf("expected stack frames on error entry: %v", entry)
	}
}

func TestCLI_SearchRequiresQuery(t *testing.T) {
	if _, err := run(t, "", "search", "--service-url", "http://127.0.0.1:1"); err == nil {
		t.Fatal("expected error when -q is missing")
	}
}
