package scores

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

func newTestManager(t *testing.T) *gdata.Manager {
	t.Helper()
	appName := fmt.Sprintf("neon_rails_test_%d", time.Now().UnixNano())
	m, err := Open(appName)
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return m
}

func TestDegradedMode(t *testing.T) {
	s := NewStore(nil)
	if s.Persistent() {
		t.Error("Expected non-persistent store")
	}

	best, err := s.Submit(Result{Score: 120})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !best {
		t.Error("Expected first score to be a new best")
	}
	best, _ = s.Submit(Result{Score: 80})
	if best {
		t.Error("Expected lower score not to be a best")
	}

	rec := s.Record()
	if rec.BestWave != 120 || rec.Races != 2 {
		t.Errorf("Expected best 120 over 2 races, got %+v", rec)
	}
}

func TestTrackKindsSeparate(t *testing.T) {
	s := NewStore(nil)
	s.Submit(Result{Score: 500})
	best, _ := s.Submit(Result{Circuit: true, Score: 300, BestLap: 41.5})
	if !best {
		t.Error("Expected circuit best independent of wave best")
	}
	if s.Best(true) != 300 || s.Best(false) != 500 {
		t.Errorf("Expected 300/500, got %f/%f", s.Best(true), s.Best(false))
	}

	s.Submit(Result{Circuit: true, Score: 10, BestLap: 45})
	if got := s.Record().BestLap; got != 41.5 {
		t.Errorf("Expected best lap 41.5, got %f", got)
	}
	s.Submit(Result{Circuit: true, Score: 10, BestLap: 39})
	if got := s.Record().BestLap; got != 39 {
		t.Errorf("Expected best lap 39, got %f", got)
	}
}

func TestPersistRoundTrip(t *testing.T) {
	m := newTestManager(t)

	s := NewStore(m)
	if !s.Persistent() {
		t.Fatal("Expected persistent store")
	}
	if _, err := s.Submit(Result{Circuit: true, Score: 700, BestLap: 33}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	reloaded := NewStore(m)
	rec := reloaded.Record()
	if rec.BestCircuit != 700 || rec.BestLap != 33 || rec.Races != 1 {
		t.Errorf("Expected saved record, got %+v", rec)
	}
}

func TestLoadCorruptRecord(t *testing.T) {
	m := newTestManager(t)
	if err := m.SaveObjectProp(recordObject, recordProperty, []byte("best_wave: [oops")); err != nil {
		t.Fatalf("SaveObjectProp failed: %v", err)
	}

	s := &Store{manager: m}
	if err := s.Load(); err == nil {
		t.Error("Expected decode error")
	}
	if rec := s.Record(); rec != (Record{}) {
		t.Errorf("Expected zero record after failed load, got %+v", rec)
	}
}
