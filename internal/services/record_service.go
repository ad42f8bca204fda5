package services

import (
	"context"
	"fmt"

	"busstation/internal/registry"
	"busstation/internal/repositories"
	"busstation/internal/utils"

	"go.uber.org/zap"
)

// RecordService resolves table tokens and runs the matching store operation.
// Unknown tokens fail before the repository is touched.
type RecordService struct {
	Repo      repositories.RecordRepository
	Log       *zap.Logger
	RequestID string
}

// WithRequestID returns a copy that tags its log lines with rid.
func (s RecordService) WithRequestID(rid string) RecordService {
	s.RequestID = rid
	return s
}

func (s RecordService) Describe(name string) (registry.Table, error) {
	return registry.Lookup(name)
}

func (s RecordService) List(ctx context.Context, name string) (registry.Table, []registry.Record, error) {
	t, err := registry.Lookup(name)
	if err != nil {
		return t, nil, err
	}
	recs, err := s.Repo.List(ctx, t)
	return t, recs, err
}

func (s RecordService) Get(ctx context.Context, name string, id int64) (registry.Table, registry.Record, error) {
	t, err := registry.Lookup(name)
	if err != nil {
		return t, nil, err
	}
	rec, err := s.Repo.Get(ctx, t, id)
	return t, rec, err
}

// Create builds a new record from submitted values and inserts it.
func (s RecordService) Create(ctx context.Context, name string, get registry.Getter) (registry.Table, registry.Record, error) {
	t, err := registry.Lookup(name)
	if err != nil {
		return t, nil, err
	}
	rec := t.New()
	if err := registry.Assign(t, rec, get); err != nil {
		return t, nil, err
	}
	if err := s.Repo.Create(ctx, t, rec); err != nil {
		return t, nil, err
	}
	utils.LogEvent(s.Log, s.RequestID, "records", "create", fmt.Sprintf("table=%s id=%d", t.Name, rec.GetID()))
	return t, rec, nil
}

// Update loads the row, copies the submitted values over it and writes it back.
// The id never changes.
func (s RecordService) Update(ctx context.Context, name string, id int64, get registry.Getter) (registry.Table, registry.Record, error) {
	t, rec, err := s.Get(ctx, name, id)
	if err != nil {
		return t, nil, err
	}
	if err := registry.Assign(t, rec, get); err != nil {
		return t, nil, err
	}
	rec.SetID(id)
	if err := s.Repo.Update(ctx, t, rec); err != nil {
		return t, nil, err
	}
	utils.LogEvent(s.Log, s.RequestID, "records", "update", fmt.Sprintf("table=%s id=%d", t.Name, id))
	return t, rec, nil
}

func (s RecordService) Delete(ctx context.Context, name string, id int64) (registry.Table, error) {
	t, err := registry.Lookup(name)
	if err != nil {
		return t, err
	}
	if err := s.Repo.Delete(ctx, t, id); err != nil {
		return t, err
	}
	utils.LogEvent(s.Log, s.RequestID, "records", "delete", fmt.Sprintf("table=%s id=%d", t.Name, id))
	return t, nil
}
