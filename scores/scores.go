// Package scores persists personal bests between runs.
//
// Storage goes through a gdata manager; a nil manager keeps records in memory
// only, so the game runs where no data directory is available.
package scores

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	recordObject   = "scores"
	recordProperty = "best"
)

// Record is the persisted set of bests
type Record struct {
	BestWave    float64 `yaml:"best_wave"`
	BestCircuit float64 `yaml:"best_circuit"`
	BestLap     float64 `yaml:"best_lap"` // seconds, 0 when unset
	Races       int     `yaml:"races"`
}

// Result is one finished run
type Result struct {
	Circuit bool
	Score   float64
	BestLap float64
}

// Store keeps the current record and writes it back on change
type Store struct {
	manager *gdata.Manager // nil in degraded mode
	record  Record
}

// Open creates a gdata manager for appName
func Open(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open score storage: %w", err)
	}
	return m, nil
}

// NewStore loads the saved record; load failures are logged and start from zero
func NewStore(m *gdata.Manager) *Store {
	s := &Store{manager: m}
	if err := s.Load(); err != nil {
		log.Printf("[scores] load failed: %v (starting fresh)", err)
	}
	return s
}

// Persistent reports whether records survive the process
func (s *Store) Persistent() bool {
	return s.manager != nil
}

// Load replaces the in-memory record with the stored one
func (s *Store) Load() error {
	s.record = Record{}
	if s.manager == nil || !s.manager.ObjectPropExists(recordObject, recordProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(recordObject, recordProperty)
	if err != nil {
		return fmt.Errorf("load record: %w", err)
	}
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	s.record = rec
	return nil
}

// Save writes the record; a no-op in degraded mode
func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(&s.record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if err := s.manager.SaveObjectProp(recordObject, recordProperty, data); err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

// Record returns a copy of the current record
func (s *Store) Record() Record {
	return s.record
}

// Best returns the best score for the track kind
func (s *Store) Best(circuit bool) float64 {
	if circuit {
		return s.record.BestCircuit
	}
	return s.record.BestWave
}

// Submit folds a run into the record and saves it
// newBest is true when the score beat the previous best for its track kind
func (s *Store) Submit(r Result) (newBest bool, err error) {
	s.record.Races++

	best := &s.record.BestWave
	if r.Circuit {
		best = &s.record.BestCircuit
	}
	if r.Score > *best {
		*best = r.Score
		newBest = true
	}
	if r.BestLap > 0 && (s.record.BestLap == 0 || r.BestLap < s.record.BestLap) {
		s.record.BestLap = r.BestLap
	}

	return newBest, s.Save()
}
