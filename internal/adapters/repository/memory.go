package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matchfit/scorebox/internal/domain/model"
	"github.com/matchfit/scorebox/pkg/metrics"
)

// MemoryStore implements CatalogStore, ParticipantStore and ResultStore with
// mutex-guarded maps. One instance backs the whole engine; every method is
// safe for concurrent use.
type MemoryStore struct {
	mu sync.RWMutex

	categories map[string]model.Category
	workouts   map[string]model.WorkoutSpec
	athletes   map[string]model.Athlete
	teams      map[string]model.Team

	// results is keyed by workoutID + "/" + participantID, the upsert key.
	results map[string]model.ResultRecord

	now func() time.Time
}

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithClock overrides the timestamp source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		categories: make(map[string]model.Category),
		workouts:   make(map[string]model.WorkoutSpec),
		athletes:   make(map[string]model.Athlete),
		teams:      make(map[string]model.Team),
		results:    make(map[string]model.ResultRecord),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func resultKey(workoutID, participantID string) string {
	return workoutID + "/" + participantID
}

// Category returns a category by id.
func (s *MemoryStore) Category(ctx context.Context, id string) (model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return model.Category{}, ErrCategoryNotFound
	}
	return c, nil
}

// Workout returns a workout by id.
func (s *MemoryStore) Workout(ctx context.Context, id string) (model.WorkoutSpec, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.workouts[id]
	if !ok {
		return model.WorkoutSpec{}, ErrWorkoutNotFound
	}
	return w, nil
}

// WorkoutsByCategory lists the workouts of one category.
func (s *MemoryStore) WorkoutsByCategory(ctx context.Context, categoryID string) ([]model.WorkoutSpec, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.WorkoutSpec
	for _, w := range s.workouts {
		if w.CategoryID == categoryID {
			out = append(out, w)
		}
	}
	return out, nil
}

// PutCategory stores a category.
func (s *MemoryStore) PutCategory(ctx context.Context, c model.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[c.ID] = c
	metrics.UpdateCategoryCount(len(s.categories))
	return nil
}

// PutWorkout stores a workout.
func (s *MemoryStore) PutWorkout(ctx context.Context, w model.WorkoutSpec) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workouts[w.ID] = w
	return nil
}

// Participant resolves a team or athlete by id into the uniform view.
func (s *MemoryStore) Participant(ctx context.Context, id string, isTeam bool) (model.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if isTeam {
		t, ok := s.teams[id]
		if !ok {
			return model.Participant{}, ErrParticipantNotFound
		}
		return t.AsParticipant(), nil
	}
	a, ok := s.athletes[id]
	if !ok {
		return model.Participant{}, ErrParticipantNotFound
	}
	return a.AsParticipant(), nil
}

// ParticipantsByCategory lists every participant registered in a category.
func (s *MemoryStore) ParticipantsByCategory(ctx context.Context, categoryID string) ([]model.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Participant
	for _, a := range s.athletes {
		if a.CategoryID == categoryID {
			out = append(out, a.AsParticipant())
		}
	}
	for _, t := range s.teams {
		if t.CategoryID == categoryID {
			out = append(out, t.AsParticipant())
		}
	}
	return out, nil
}

// SetTotalScore writes the aggregator-computed total onto a participant.
func (s *MemoryStore) SetTotalScore(ctx context.Context, id string, isTeam bool, total int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if isTeam {
		t, ok := s.teams[id]
		if !ok {
			return ErrParticipantNotFound
		}
		t.TotalScore = total
		s.teams[id] = t
		return nil
	}
	a, ok := s.athletes[id]
	if !ok {
		return ErrParticipantNotFound
	}
	a.TotalScore = total
	s.athletes[id] = a
	return nil
}

// PutAthlete stores an athlete.
func (s *MemoryStore) PutAthlete(ctx context.Context, a model.Athlete) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.athletes[a.ID] = a
	return nil
}

// PutTeam stores a team.
func (s *MemoryStore) PutTeam(ctx context.Context, t model.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[t.ID] = t
	return nil
}

// Upsert creates or updates the record keyed by workout+participant. On
// update only the value and finalized flag change; position survives until
// the next ranking run.
func (s *MemoryStore) Upsert(ctx context.Context, rec model.ResultRecord) (model.ResultRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := resultKey(rec.WorkoutID, rec.ParticipantID)
	now := s.now()

	existing, ok := s.results[key]
	if ok {
		existing.Value = rec.Value
		existing.Finalized = rec.Finalized
		existing.UpdatedAt = now
		s.results[key] = existing
		return existing, false, nil
	}

	rec.ID = uuid.NewString()
	rec.Position = 0
	rec.SubmittedAt = now
	rec.UpdatedAt = now
	s.results[key] = rec
	metrics.UpdateResultCount(len(s.results))
	return rec, true, nil
}

// Result returns the record for one workout+participant pair.
func (s *MemoryStore) Result(ctx context.Context, workoutID, participantID string) (model.ResultRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.results[resultKey(workoutID, participantID)]
	if !ok {
		return model.ResultRecord{}, ErrResultNotFound
	}
	return rec, nil
}

// ResultsByWorkout returns copies of every record of one workout.
func (s *MemoryStore) ResultsByWorkout(ctx context.Context, categoryID, workoutID string) ([]*model.ResultRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.ResultRecord
	for _, rec := range s.results {
		if rec.CategoryID == categoryID && rec.WorkoutID == workoutID {
			cp := rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ResultsByCategory returns copies of every record of one category.
func (s *MemoryStore) ResultsByCategory(ctx context.Context, categoryID string) ([]*model.ResultRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.ResultRecord
	for _, rec := range s.results {
		if rec.CategoryID == categoryID {
			cp := rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ResultsByParticipant returns every record of one participant.
func (s *MemoryStore) ResultsByParticipant(ctx context.Context, participantID string) ([]model.ResultRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.ResultRecord
	for _, rec := range s.results {
		if rec.ParticipantID == participantID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// SetPosition writes a ranking-assigned position onto a stored record.
func (s *MemoryStore) SetPosition(ctx context.Context, workoutID, participantID string, position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := resultKey(workoutID, participantID)
	rec, ok := s.results[key]
	if !ok {
		return ErrResultNotFound
	}
	rec.Position = position
	s.results[key] = rec
	return nil
}

// Delete removes the record for one workout+participant pair.
func (s *MemoryStore) Delete(ctx context.Context, workoutID, participantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := resultKey(workoutID, participantID)
	if _, ok := s.results[key]; !ok {
		return ErrResultNotFound
	}
	delete(s.results, key)
	metrics.UpdateResultCount(len(s.results))
	return nil
}

// Count returns the number of stored records.
func (s *MemoryStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}
