/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/josephgoksu/fitcoach/models"
)

// Repository reads and writes the typed documents of the application.
type Repository struct {
	store Store
}

// NewRepository wraps a Store.
func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// Store returns the underlying Store.
func (r *Repository) Store() Store {
	return r.store
}

// Close closes the underlying Store.
func (r *Repository) Close() error {
	return r.store.Close()
}

// SavePlan overwrites the stored plan.
func (r *Repository) SavePlan(ctx context.Context, plan *models.FitnessPlan) error {
	if plan == nil {
		return errors.New("plan is nil")
	}
	return r.put(ctx, KeyPlan, plan)
}

// LoadPlan returns the stored plan, or ErrNotFound.
func (r *Repository) LoadPlan(ctx context.Context) (*models.FitnessPlan, error) {
	var plan models.FitnessPlan
	if err := r.get(ctx, KeyPlan, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// SaveProfile overwrites the stored profile.
func (r *Repository) SaveProfile(ctx context.Context, profile models.UserProfile) error {
	return r.put(ctx, KeyProfile, profile)
}

// LoadProfile returns the stored profile, or ErrNotFound.
func (r *Repository) LoadProfile(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.get(ctx, KeyProfile, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Clear removes the plan and the profile. The quote cache is kept.
func (r *Repository) Clear(ctx context.Context) error {
	for _, key := range []string{KeyPlan, KeyProfile} {
		if err := r.store.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// LoadQuoteCache returns the cached quote of the day, or ErrNotFound.
func (r *Repository) LoadQuoteCache(ctx context.Context) (*models.CachedQuote, error) {
	var q models.CachedQuote
	if err := r.get(ctx, KeyQuoteCache, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// SaveQuoteCache overwrites the cached quote.
func (r *Repository) SaveQuoteCache(ctx context.Context, q models.CachedQuote) error {
	return r.put(ctx, KeyQuoteCache, q)
}

func (r *Repository) put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.store.Set(ctx, key, data)
}

func (r *Repository) get(ctx context.Context, key string, v any) error {
	data, err := r.store.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}
