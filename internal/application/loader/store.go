package loader

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/dataset"
)

// Store mantiene el snapshot vigente. Las lecturas no bloquean; una recarga
// exitosa reemplaza el snapshot de forma atómica y una fallida conserva el anterior.
type Store struct {
	loader  *Loader
	current atomic.Pointer[dataset.Snapshot]

	mu        sync.Mutex // serializa recargas y registro de observadores
	observers []func(*dataset.Snapshot)
}

// NewStore crea un Store vacío; llamar Reload antes de servir.
func NewStore(l *Loader) *Store {
	return &Store{loader: l}
}

// Current devuelve el snapshot vigente o domain.ErrSnapshotUnavailable.
func (s *Store) Current() (*dataset.Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, domain.ErrSnapshotUnavailable
	}
	return snap, nil
}

// Reload vuelve a leer la fuente y publica el nuevo snapshot.
func (s *Store) Reload(ctx context.Context) (*dataset.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.loader.Load(ctx)
	if err != nil {
		s.loader.log.Error().Err(err).Msg("recarga fallida; se conserva el snapshot anterior")
		return nil, err
	}
	s.current.Store(snap)
	for _, fn := range s.observers {
		fn(snap)
	}
	return snap, nil
}

// OnReload registra una función que se invoca tras cada recarga exitosa.
func (s *Store) OnReload(fn func(*dataset.Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}
