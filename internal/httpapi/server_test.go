package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skillscout/internal/model"
	"skillscout/internal/pipeline"
)

type fakeRunner struct {
	result *pipeline.Result
	err    error
	gotTxt string
}

func (f *fakeRunner) Run(_ context.Context, text string) (*pipeline.Result, error) {
	f.gotTxt = text
	return f.result, f.err
}

func newTestServer(runner ScanRunner) *httptest.Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return httptest.NewServer(New(runner, logger).Routes())
}

func TestScan_Success(t *testing.T) {
	runner := &fakeRunner{result: &pipeline.Result{
		RunID:  "run-42",
		Skills: []string{"Go"},
		Jobs:   []model.JobPosting{{Title: "Go Engineer", URL: "https://jobs.example/go", Skill: "Go"}},
	}}
	srv := newTestServer(runner)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/scan", "application/json",
		strings.NewReader(`{"text": "Go developer"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if runner.gotTxt != "Go developer" {
		t.Errorf("runner received %q", runner.gotTxt)
	}

	var got pipeline.Result
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RunID != "run-42" || len(got.Jobs) != 1 {
		t.Errorf("unexpected body: %+v", got)
	}
}

func TestScan_EmptyText(t *testing.T) {
	srv := newTestServer(&fakeRunner{})
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/scan", "application/json", strings.NewReader(`{"text": ""}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestScan_InvalidJSON(t *testing.T) {
	srv := newTestServer(&fakeRunner{})
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/scan", "application/json", strings.NewReader(`{broken`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestScan_PipelineError(t *testing.T) {
	srv := newTestServer(&fakeRunner{err: errors.New("store unavailable")})
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/scan", "application/json", strings.NewReader(`{"text": "Go"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(&fakeRunner{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
