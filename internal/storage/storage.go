package storage

import (
	"errors"
	"sync"

	"github.com/eugenenazirov/fuelcalc/internal/fuel"
)

var (
	// ErrNoMasses indicates an attempt to store an empty mass list.
	ErrNoMasses = errors.New("mass list must contain at least one mass")
)

// Storage provides access to the module masses used by the calculator.
type Storage interface {
	GetMasses() ([]fuel.Mass, error)
	SetMasses(masses []fuel.Mass) error
}

// MemoryStorage keeps the mass list in-memory and guards access with a
// RWMutex. Order is preserved exactly as supplied and duplicates are legal;
// two modules may well weigh the same.
type MemoryStorage struct {
	mu     sync.RWMutex
	masses []fuel.Mass
}

// NewMemoryStorage initialises empty storage. Masses are loaded either from
// the batch input at startup or through the API.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// GetMasses returns a defensive copy of the currently stored masses. The
// result is empty until a list has been loaded.
func (s *MemoryStorage) GetMasses() ([]fuel.Mass, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneMasses(s.masses), nil
}

// SetMasses replaces the stored mass list with a copy of the provided one.
func (s *MemoryStorage) SetMasses(masses []fuel.Mass) error {
	if len(masses) == 0 {
		return ErrNoMasses
	}

	s.mu.Lock()
	s.masses = cloneMasses(masses)
	s.mu.Unlock()

	return nil
}

func cloneMasses(src []fuel.Mass) []fuel.Mass {
	out := make([]fuel.Mass, len(src))
	copy(out, src)
	return out
}
