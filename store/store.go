package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/etnz/estate"
)

// Outcome tells how a Store operation went.
type Outcome int

const (
	// Loaded means the stored value was read and decoded.
	Loaded Outcome = iota
	// Seeded means there was no stored value: the seed was returned and written.
	Seeded
	// Defaulted means the stored value could not be read or decoded: the seed
	// was returned and nothing was written.
	Defaulted
	// Saved means the value was written.
	Saved
	// Failed means the value could not be written. The error has been logged.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Loaded:
		return "loaded"
	case Seeded:
		return "seeded"
	case Defaulted:
		return "defaulted"
	case Saved:
		return "saved"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the value read from a Store with the way it was obtained.
//
// Value is always usable. Err holds the read, decode or seeding error when
// Outcome is Defaulted, or Seeded with a failed write.
type Result[T any] struct {
	Value   T
	Outcome Outcome
	Err     error
}

// Store reads and writes a portfolio on a Backend.
type Store struct {
	backend Backend
	seed    Seed
	log     *log.Logger

	// mu serializes the load-update-save mutations.
	mu sync.Mutex
}

// New returns a Store on backend. A nil seed means SampleSeed and a nil
// logger means log.Default().
func New(backend Backend, seed Seed, logger *log.Logger) *Store {
	if seed == nil {
		seed = SampleSeed{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Store{backend: backend, seed: seed, log: logger}
}

// Backend returns the underlying storage.
func (s *Store) Backend() Backend { return s.backend }

// LoadProperties returns the stored properties. On the first access the seed
// properties are returned and written.
func (s *Store) LoadProperties(ctx context.Context) Result[estate.Properties] {
	r := load(ctx, s, PropertiesKey, s.seed.Properties)
	if r.Value == nil {
		r.Value = estate.Properties{}
	}
	return r
}

// LoadRenovations returns the stored renovations. On the first access the
// seed renovations are returned and written.
func (s *Store) LoadRenovations(ctx context.Context) Result[estate.Renovations] {
	r := load(ctx, s, RenovationsKey, s.seed.Renovations)
	if r.Value == nil {
		r.Value = estate.Renovations{}
	}
	return r
}

// SaveProperties overwrites the stored properties.
func (s *Store) SaveProperties(ctx context.Context, ps estate.Properties) Outcome {
	return save(ctx, s, PropertiesKey, ps)
}

// SaveRenovations overwrites the stored renovations.
func (s *Store) SaveRenovations(ctx context.Context, rs estate.Renovations) Outcome {
	return save(ctx, s, RenovationsKey, rs)
}

func load[T any](ctx context.Context, s *Store, key string, seed func() T) Result[T] {
	data, err := s.backend.Get(ctx, key)
	if errors.Is(err, ErrNotFound) || (err == nil && len(bytes.TrimSpace(data)) == 0) {
		v := seed()
		r := Result[T]{Value: v, Outcome: Seeded}
		if err := s.write(ctx, key, v); err != nil {
			r.Err = err
		}
		return r
	}
	if err != nil {
		s.log.Printf("could not read %s, using default data: %v", key, err)
		return Result[T]{Value: seed(), Outcome: Defaulted, Err: err}
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		err = fmt.Errorf("could not decode %s: %w", key, err)
		s.log.Printf("%v, using default data", err)
		return Result[T]{Value: seed(), Outcome: Defaulted, Err: err}
	}
	return Result[T]{Value: v, Outcome: Loaded}
}

func save[T any](ctx context.Context, s *Store, key string, v T) Outcome {
	if err := s.write(ctx, key, v); err != nil {
		return Failed
	}
	return Saved
}

// write encodes v and stores it under key, logging failures.
func (s *Store) write(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		err = fmt.Errorf("could not encode %s: %w", key, err)
		s.log.Println(err)
		return err
	}
	if err := s.backend.Set(ctx, key, data); err != nil {
		err = fmt.Errorf("could not save %s: %w", key, err)
		s.log.Println(err)
		return err
	}
	return nil
}

// Onboarded reports whether the onboarding was completed. Any read error
// counts as not onboarded.
func (s *Store) Onboarded(ctx context.Context) bool {
	data, err := s.backend.Get(ctx, OnboardedKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Printf("could not read %s: %v", OnboardedKey, err)
		}
		return false
	}
	return string(bytes.TrimSpace(data)) == "true"
}

// SetOnboarded records that the onboarding was completed.
func (s *Store) SetOnboarded(ctx context.Context) Outcome {
	if err := s.backend.Set(ctx, OnboardedKey, []byte("true")); err != nil {
		s.log.Printf("could not save %s: %v", OnboardedKey, err)
		return Failed
	}
	return Saved
}

// ResetOnboarding forgets that the onboarding was completed.
func (s *Store) ResetOnboarding(ctx context.Context) Outcome {
	return s.delete(ctx, OnboardedKey)
}

// Clear removes every entry. The next load seeds the collections again.
func (s *Store) Clear(ctx context.Context) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delete(ctx, Keys...)
}

func (s *Store) delete(ctx context.Context, keys ...string) Outcome {
	if err := s.backend.Delete(ctx, keys...); err != nil {
		s.log.Printf("could not delete %v: %v", keys, err)
		return Failed
	}
	return Saved
}

// Portfolio is the whole content of a Store.
type Portfolio struct {
	Properties  estate.Properties  `json:"properties"`
	Renovations estate.Renovations `json:"renovations"`
	Onboarded   bool               `json:"onboarded"`
}

// Portfolio loads every entry.
func (s *Store) Portfolio(ctx context.Context) Portfolio {
	return Portfolio{
		Properties:  s.LoadProperties(ctx).Value,
		Renovations: s.LoadRenovations(ctx).Value,
		Onboarded:   s.Onboarded(ctx),
	}
}

// AddProperty appends p to the stored properties.
func (s *Store) AddProperty(ctx context.Context, p estate.Property) (estate.Properties, Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps := s.LoadProperties(ctx).Value.WithAdded(p)
	return ps, s.SaveProperties(ctx, ps)
}

// RemoveProperty removes the property id. Its renovations are kept.
func (s *Store) RemoveProperty(ctx context.Context, id string) (estate.Properties, Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps := s.LoadProperties(ctx).Value
	if _, ok := ps.Find(id); !ok {
		return ps, Loaded, fmt.Errorf("%w %q", estate.ErrUnknownProperty, id)
	}
	ps = ps.WithRemoved(id)
	return ps, s.SaveProperties(ctx, ps), nil
}

// AddRenovation appends r to the stored renovations. The property it refers
// to is not checked.
func (s *Store) AddRenovation(ctx context.Context, r estate.Renovation) (estate.Renovations, Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rs := s.LoadRenovations(ctx).Value.WithAdded(r)
	return rs, s.SaveRenovations(ctx, rs)
}

// RemoveRenovation removes the renovation id.
func (s *Store) RemoveRenovation(ctx context.Context, id string) (estate.Renovations, Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rs := s.LoadRenovations(ctx).Value
	if _, ok := rs.Find(id); !ok {
		return rs, Loaded, fmt.Errorf("%w %q", estate.ErrUnknownRenovation, id)
	}
	rs = rs.WithRemoved(id)
	return rs, s.SaveRenovations(ctx, rs), nil
}

// ChangeStatus moves the renovation id to status. A non nil actualCost is
// recorded as well.
func (s *Store) ChangeStatus(ctx context.Context, id string, status estate.Status, actualCost *estate.Money) (estate.Renovations, Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rs := s.LoadRenovations(ctx).Value
	rs, err := rs.WithStatusChanged(id, status)
	if err != nil {
		return rs, Loaded, err
	}
	if actualCost != nil {
		if rs, err = rs.WithActualCost(id, *actualCost); err != nil {
			return rs, Loaded, err
		}
	}
	return rs, s.SaveRenovations(ctx, rs), nil
}
