package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pharmacy-fulfillment/internal/domain/actors"
)

type actorRepo struct {
	mu      sync.RWMutex
	byID    map[string]actors.Actor
	byEmail map[string]string
}

func NewActorRepo() actors.Repository {
	return &actorRepo{
		byID:    make(map[string]actors.Actor),
		byEmail: make(map[string]string),
	}
}

func (r *actorRepo) Create(ctx context.Context, a actors.Actor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("actor id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("actor already exists")
	}
	if a.OutstandingTurns < 0 {
		return actors.ErrOutOfRange
	}

	email := strings.ToLower(strings.TrimSpace(a.Email))
	if email != "" {
		if _, taken := r.byEmail[email]; taken {
			return actors.ErrEmailTaken
		}
		r.byEmail[email] = a.ID
	}
	r.byID[a.ID] = a
	return nil
}

func (r *actorRepo) GetByID(ctx context.Context, id string) (actors.Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return actors.Actor{}, actors.ErrNotFound
	}
	return a, nil
}

func (r *actorRepo) GetByEmail(ctx context.Context, email string) (actors.Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return actors.Actor{}, actors.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *actorRepo) AdjustTurns(ctx context.Context, patientID string, delta int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[patientID]
	if !ok {
		return 0, actors.ErrNotFound
	}
	next := a.OutstandingTurns + delta
	if next < 0 {
		return a.OutstandingTurns, actors.ErrOutOfRange
	}
	a.OutstandingTurns = next
	r.byID[patientID] = a
	return next, nil
}
