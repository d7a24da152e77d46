package repository

import (
	"sync"

	"github.com/vfg2006/vendor-kpi-api/internal/domain"
)

type GoalRepository interface {
	Get(vendorID int, period domain.Period) (*domain.Goal, bool)
	// Upsert substitui o objetivo existente para a mesma chave, nunca soma valores
	Upsert(goal domain.Goal)
	Count() int
}

type goalRepository struct {
	mu    sync.RWMutex
	goals map[domain.GoalKey]domain.Goal
}

func NewGoalRepository(seed []domain.Goal) GoalRepository {
	r := &goalRepository{goals: make(map[domain.GoalKey]domain.Goal, len(seed))}
	for _, g := range seed {
		r.goals[g.Key()] = g
	}
	return r
}

func (r *goalRepository) Get(vendorID int, period domain.Period) (*domain.Goal, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goal, ok := r.goals[domain.GoalKey{VendorID: vendorID, Period: period}]
	if !ok {
		return nil, false
	}
	return &goal, true
}

func (r *goalRepository) Upsert(goal domain.Goal) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := goal.Key()
	delete(r.goals, key)
	r.goals[key] = goal
}

func (r *goalRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.goals)
}
