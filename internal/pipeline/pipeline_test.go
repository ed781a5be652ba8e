package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/itsmudassir/expert-finder/internal/domain"
)

type memSource struct {
	name    string
	records []domain.Record
}

func (s *memSource) Name() string { return s.name }

func (s *memSource) Each(_ context.Context, fn func(domain.Record) error) error {
	for _, rec := range s.records {
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

type memSink struct {
	profiles []*domain.Profile
	indexed  bool
	fail     bool
}

func (s *memSink) Replace(_ context.Context, profiles []*domain.Profile, _ int) (int, error) {
	if s.fail {
		return 0, errors.New("write refused")
	}
	s.profiles = profiles
	return len(profiles), nil
}

func (s *memSink) EnsureIndexes(_ context.Context) error {
	s.indexed = true
	return nil
}

func TestRun_ConsolidatesAcrossSources(t *testing.T) {
	sources := []Source{
		&memSource{name: "a_speakers", records: []domain.Record{
			{"name": "Dr. Jane Smith", "speaker_id": "a-1", "job_title": "CEO"},
			{"name": "Marcus Webb", "speaker_id": "a-2"},
			{"name": "None"},
		}},
		&memSource{name: "eventraptor", records: []domain.Record{
			{"name": "Jane Smith", "speaker_id": "e-9", "company": "Acme"},
		}},
	}
	sink := &memSink{}

	p := New(Options{Sources: sources, Sink: sink, BatchSize: 10})
	stats, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalProcessed != 3 {
		t.Errorf("processed = %d, want 3", stats.TotalProcessed)
	}
	if stats.TotalSkipped != 1 {
		t.Errorf("skipped = %d, want 1", stats.TotalSkipped)
	}
	if stats.DuplicatesMerged != 1 {
		t.Errorf("merged = %d, want 1", stats.DuplicatesMerged)
	}
	if stats.FinalProfiles != 2 || stats.Written != 2 {
		t.Errorf("final/written = %d/%d, want 2/2", stats.FinalProfiles, stats.Written)
	}
	if !sink.indexed {
		t.Error("indexes were not created")
	}
	if stats.RunID == "" {
		t.Error("run id not assigned")
	}

	var jane *domain.Profile
	for _, prof := range sink.profiles {
		if prof.BasicInfo.FullName == "Jane Smith" || prof.BasicInfo.FullName == "Dr. Jane Smith" {
			jane = prof
		}
	}
	if jane == nil {
		t.Fatal("consolidated profile not written")
	}
	if jane.SourceIDs["a_speakers"] != "a-1" || jane.SourceIDs["eventraptor"] != "e-9" {
		t.Errorf("source ids not merged: %v", jane.SourceIDs)
	}
	if jane.ProfessionalInfo.Title != "CEO" || jane.ProfessionalInfo.Company != "Acme" {
		t.Errorf("fields not merged: %q %q", jane.ProfessionalInfo.Title, jane.ProfessionalInfo.Company)
	}
}

func TestRun_WriteFailureAborts(t *testing.T) {
	sources := []Source{
		&memSource{name: "a_speakers", records: []domain.Record{
			{"name": "Solo Speaker"},
		}},
	}
	sink := &memSink{fail: true}

	p := New(Options{Sources: sources, Sink: sink})
	stats, err := p.Run(context.Background())
	if err == nil {
		t.Fatal("expected write error")
	}
	if sink.indexed {
		t.Error("indexes must not be created after a failed write")
	}
	if stats.Written != 0 {
		t.Errorf("written = %d, want 0", stats.Written)
	}
}

func TestRun_PerSourceStats(t *testing.T) {
	sources := []Source{
		&memSource{name: "speakerhub", records: []domain.Record{
			{"name": "Ana Lopez"},
			{"name": "n/a"},
			{"name": "Ana Lopez"},
		}},
	}
	sink := &memSink{}

	p := New(Options{Sources: sources, Sink: sink})
	stats, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats.Sources) != 1 {
		t.Fatalf("source stats count = %d", len(stats.Sources))
	}
	src := stats.Sources[0]
	if src.Processed != 2 || src.Skipped != 1 || src.Merged != 1 || src.Created != 1 {
		t.Errorf("unexpected source stats: %+v", src)
	}
}
