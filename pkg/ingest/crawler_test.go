package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCrawlExtractsVisibleText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><head>
			<script>var hidden = "nope";</script>
			<style>.x { color: red; }</style>
		</head><body>
			<h1>Admissions</h1>
			<p>Applications   open in   June.</p>
			<noscript>enable js</noscript>
		</body></html>`))
	}))
	defer server.Close()

	text, err := NewCrawler().Crawl(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Crawl() error = %v", err)
	}

	if !strings.Contains(text, "Admissions") {
		t.Errorf("Crawl() missing heading text: %q", text)
	}
	if !strings.Contains(text, "Applications open in June.") {
		t.Errorf("Crawl() should collapse whitespace, got %q", text)
	}
	if strings.Contains(text, "hidden") || strings.Contains(text, "color: red") || strings.Contains(text, "enable js") {
		t.Errorf("Crawl() leaked script/style/noscript content: %q", text)
	}
}

func TestCrawlNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := NewCrawler().Crawl(context.Background(), server.URL); err == nil {
		t.Fatal("Crawl() should fail on non-200 status")
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	in := "  line one  \n\n\n   line\t\ttwo   \n"
	want := "line one\nline two"
	if got := normalizeWhitespace(in); got != want {
		t.Errorf("normalizeWhitespace() = %q, want %q", got, want)
	}
}
