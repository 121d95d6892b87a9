package store

import (
	"path/filepath"
	"testing"
	"time"

	"skillscout/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func timePtr(t time.Time) *time.Time { return &t }

func TestSaveAndLoadRun(t *testing.T) {
	s := newTestStore(t)

	posted := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	run := model.ScanRun{
		ID:        "run-1",
		Skills:    []string{"Go", "AWS"},
		JobCount:  2,
		CreatedAt: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
	}
	postings := []model.JobPosting{
		{Title: "Go Engineer", Company: "Acme", Location: "Remote", URL: "https://jobs.example/go", PostedAt: timePtr(posted), Skill: "Go", Source: "boardA"},
		{Title: "Cloud Engineer", Company: "Acme", Location: "Berlin", URL: "https://jobs.example/cloud", Skill: "AWS", Source: "boardB"},
	}

	if err := s.SaveRun(run, postings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].ID != "run-1" || runs[0].JobCount != 2 {
		t.Errorf("unexpected run: %+v", runs[0])
	}
	if len(runs[0].Skills) != 2 || runs[0].Skills[0] != "Go" {
		t.Errorf("unexpected skills: %v", runs[0].Skills)
	}

	loaded, err := s.RunPostings("run-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(loaded))
	}
	if loaded[0].URL != "https://jobs.example/go" {
		t.Errorf("postings out of order: %+v", loaded[0])
	}
	if loaded[0].PostedAt == nil || !loaded[0].PostedAt.Equal(posted) {
		t.Errorf("posted_at round trip failed: %v", loaded[0].PostedAt)
	}
	if loaded[1].PostedAt != nil {
		t.Errorf("expected nil posted_at, got %v", loaded[1].PostedAt)
	}
}

func TestListRuns_NewestFirst(t *testing.T) {
	s := newTestStore(t)

	old := model.ScanRun{ID: "old", Skills: []string{"Go"}, CreatedAt: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)}
	recent := model.ScanRun{ID: "recent", Skills: []string{"Go"}, CreatedAt: time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)}

	if err := s.SaveRun(old, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SaveRun(recent, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != "recent" {
		t.Errorf("expected newest run first, got %+v", runs)
	}
}

func TestSaveRun_DuplicateIDFails(t *testing.T) {
	s := newTestStore(t)

	run := model.ScanRun{ID: "dup", Skills: []string{"Go"}, CreatedAt: time.Now().UTC()}
	if err := s.SaveRun(run, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SaveRun(run, nil); err == nil {
		t.Fatal("expected primary key violation, got nil")
	}
}

func TestRunPostings_UnknownRun(t *testing.T) {
	s := newTestStore(t)

	postings, err := s.RunPostings("missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(postings) != 0 {
		t.Errorf("expected no postings, got %d", len(postings))
	}
}
