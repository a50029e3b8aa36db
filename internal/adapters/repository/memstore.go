package repository

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/okian/halfcourt/internal/domain/model"
	"github.com/okian/halfcourt/internal/domain/types"
)

type groupKey struct {
	season    string
	eventType string
}

type groupAgg struct {
	attempts int
	made     int
}

// memStore implements Store with a mutex-guarded map. The batch pipeline
// records sequentially; the lock only keeps the store safe for callers
// that read while another goroutine records.
type memStore struct {
	mu             sync.RWMutex
	groups         map[groupKey]*groupAgg
	total          int
	ratioPrecision int
}

// NewMemStore creates an empty in-memory aggregate store.
func NewMemStore(opts ...Option) Store {
	s := &memStore{
		groups:         make(map[groupKey]*groupAgg),
		ratioPrecision: defaultRatioPrecision,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *memStore) Record(_ context.Context, shot model.TransformedShot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := groupKey{season: shot.Season, eventType: shot.Type}
	agg, ok := s.groups[k]
	if !ok {
		agg = &groupAgg{}
		s.groups[k] = agg
	}
	agg.attempts++
	if shot.Made {
		agg.made++
	}
	s.total++
	return nil
}

func (s *memStore) Group(_ context.Context, season, eventType string) (types.GroupStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	agg, ok := s.groups[groupKey{season: season, eventType: eventType}]
	if !ok {
		return types.GroupStat{}, ErrGroupNotFound
	}
	return s.stat(groupKey{season, eventType}, agg), nil
}

func (s *memStore) Groups(_ context.Context) ([]types.GroupStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.GroupStat, 0, len(s.groups))
	for k, agg := range s.groups {
		out = append(out, s.stat(k, agg))
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Season != out[b].Season {
			return out[a].Season < out[b].Season
		}
		return out[a].EventType < out[b].EventType
	})
	return out, nil
}

func (s *memStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

func (s *memStore) stat(k groupKey, agg *groupAgg) types.GroupStat {
	ratio := 0.0
	if agg.attempts > 0 {
		p := math.Pow(10, float64(s.ratioPrecision))
		ratio = math.Round(float64(agg.made)/float64(agg.attempts)*p) / p
	}
	return types.GroupStat{
		Season:    k.season,
		EventType: k.eventType,
		Attempts:  agg.attempts,
		Made:      agg.made,
		MadeRatio: ratio,
	}
}
