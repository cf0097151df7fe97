// Package persistence stores run progress between sessions.
package persistence

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const progressKey = "progress"

// SavedProgress is what a later session needs to rebuild the run. Course is
// the level's CourseID; Collected lists the indices of items already picked
// up, so they stay gone and are not scored twice.
type SavedProgress struct {
	Course     string `json:"course"`
	Checkpoint int    `json:"checkpoint"`
	Collected  []int  `json:"collected,omitempty"`
	Deaths     int    `json:"deaths"`
	Score      int    `json:"score"`
}

// Store persists a single progress record. Load returns nil when nothing is
// saved.
type Store interface {
	Load() (*SavedProgress, error)
	Save(p *SavedProgress) error
	Clear() error
}

// GDataStore keeps progress in the per-user data directory.
type GDataStore struct {
	manager *gdata.Manager
}

// OpenGData opens the gdata storage for appName.
func OpenGData(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open progress storage: %w", err)
	}
	return &GDataStore{manager: m}, nil
}

func (s *GDataStore) Load() (*SavedProgress, error) {
	data, err := s.manager.LoadItem(progressKey)
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return nil, nil
	}
	return decode(data)
}

func (s *GDataStore) Save(p *SavedProgress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := s.manager.SaveItem(progressKey, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// Clear overwrites the record with an empty item.
func (s *GDataStore) Clear() error {
	if err := s.manager.SaveItem(progressKey, nil); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}

// MemoryStore keeps the encoded record in memory. Used by tests and by the
// viewer when the data directory is unavailable.
type MemoryStore struct {
	data  []byte
	Saves int
}

func (s *MemoryStore) Load() (*SavedProgress, error) {
	return decode(s.data)
}

func (s *MemoryStore) Save(p *SavedProgress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	s.data = data
	s.Saves++
	return nil
}

func (s *MemoryStore) Clear() error {
	s.data = nil
	return nil
}

func decode(data []byte) (*SavedProgress, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var p SavedProgress
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode progress: %w", err)
	}
	return &p, nil
}
