package store

import "skillscout/internal/model"

// NopStore discards everything. Used for --no-save scans and in tests.
type NopStore struct{}

// NewNopStore returns a store that persists nothing.
func NewNopStore() *NopStore { return &NopStore{} }

func (s *NopStore) SaveRun(model.ScanRun, []model.JobPosting) error { return nil }

func (s *NopStore) ListRuns(int) ([]model.ScanRun, error) { return nil, nil }

func (s *NopStore) RunPostings(string) ([]model.JobPosting, error) { return nil, nil }

func (s *NopStore) Close() error { return nil }
