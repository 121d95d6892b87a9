package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const wwrSearchPage = `<html><body>
<section class="jobs">
  <ul>
    <li>
      <a href="/remote-jobs/acme-senior-python-engineer">
        <span class="company">Acme</span>
        <span class="title">Senior Python Engineer</span>
        <span class="region">Anywhere in the World</span>
        <time datetime="2026-08-24T10:00:00Z">1d</time>
      </a>
    </li>
    <li>
      <a href="/remote-jobs/undated-python-role">
        <span class="company">NoDate Ltd</span>
        <span class="title">Python Developer</span>
        <span class="region">Europe</span>
      </a>
    </li>
    <li class="view-all">
      <a href="/categories/remote-programming-jobs">View all</a>
    </li>
  </ul>
</section>
</body></html>`

func TestWeWorkRemotelyFetch_ParsesListing(t *testing.T) {
	fixedNow(t, time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("term"); got != "Python" {
			t.Errorf("expected term=Python, got %q", got)
		}
		w.Write([]byte(wwrSearchPage))
	}))
	defer srv.Close()

	adapter := NewWeWorkRemotelyAdapter(srv.Client(), 7*24*time.Hour)
	adapter.baseURL = srv.URL

	postings, err := adapter.Fetch(context.Background(), "Python")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The undated item and the view-all link must both be dropped.
	if len(postings) != 1 {
		t.Fatalf("expected 1 posting, got %d", len(postings))
	}

	p := postings[0]
	if p.Title != "Senior Python Engineer" {
		t.Errorf("unexpected title %q", p.Title)
	}
	if p.Company != "Acme" {
		t.Errorf("unexpected company %q", p.Company)
	}
	if p.Location != "Anywhere in the World" {
		t.Errorf("unexpected location %q", p.Location)
	}
	if p.URL != srv.URL+"/remote-jobs/acme-senior-python-engineer" {
		t.Errorf("unexpected url %q", p.URL)
	}
	if p.PostedAt == nil {
		t.Fatal("expected PostedAt to be set")
	}
}

func TestWeWorkRemotelyFetch_MalformedHTMLTolerated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><section class='jobs'><li><span>broken"))
	}))
	defer srv.Close()

	adapter := NewWeWorkRemotelyAdapter(srv.Client(), 7*24*time.Hour)
	adapter.baseURL = srv.URL

	// goquery repairs what it can; no link items means no postings, no error.
	postings, err := adapter.Fetch(context.Background(), "Python")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(postings) != 0 {
		t.Fatalf("expected 0 postings, got %d", len(postings))
	}
}

func TestWeWorkRemotelyFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	adapter := NewWeWorkRemotelyAdapter(srv.Client(), 7*24*time.Hour)
	adapter.baseURL = srv.URL

	if _, err := adapter.Fetch(context.Background(), "Python"); err == nil {
		t.Fatal("expected error for HTTP 403, got nil")
	}
}
