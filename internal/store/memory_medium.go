package store

import (
	"context"
	"sync"
)

// MemoryMedium is an in-process Medium used by tests and single-node dev runs.
// Semantics match RedisMedium: whole-value writes, best-effort change fanout.
type MemoryMedium struct {
	mu       sync.RWMutex
	values   map[string]string
	watchers map[int]chan string
	nextID   int
}

func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{
		values:   make(map[string]string),
		watchers: make(map[int]chan string),
	}
}

func (m *MemoryMedium) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.values[key]
	return val, ok, nil
}

func (m *MemoryMedium) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()
	m.notify(key)
	return nil
}

func (m *MemoryMedium) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()
	m.notify(key)
	return nil
}

func (m *MemoryMedium) Watch(ctx context.Context) (<-chan string, error) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	ch := make(chan string, 16)
	m.watchers[id] = ch
	m.mu.Unlock()

	out := make(chan string, 16)
	go func() {
		defer func() {
			m.mu.Lock()
			delete(m.watchers, id)
			m.mu.Unlock()
			close(out)
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case key := <-ch:
				select {
				case out <- key:
				default:
				}
			}
		}
	}()
	return out, nil
}

func (m *MemoryMedium) Close() error {
	return nil
}

func (m *MemoryMedium) notify(key string) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, ch := range m.watchers {
		select {
		case ch <- key:
		default:
		}
	}
}
