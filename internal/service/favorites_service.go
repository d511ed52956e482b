package service

import (
	"context"
	"fmt"

	"lyra/internal/repository"
)

const favoritesKey = "user:favorites:launches"

// FavoritesService tracks a user's saved launch ids in the key-value
// store. The set is kept as a JSON array under a single key and has no
// expiration.
type FavoritesService interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, launchID string) error
	Remove(ctx context.Context, launchID string) error
	Toggle(ctx context.Context, launchID string) (bool, error)
	IsFavorite(ctx context.Context, launchID string) (bool, error)
}

type favoritesService struct {
	cacheRepo repository.CacheRepository
}

func NewFavoritesService(cacheRepo repository.CacheRepository) FavoritesService {
	return &favoritesService{cacheRepo: cacheRepo}
}

func (s *favoritesService) List(ctx context.Context) ([]string, error) {
	var ids []string
	if err := s.cacheRepo.GetJSON(ctx, favoritesKey, &ids); err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (s *favoritesService) Add(ctx context.Context, launchID string) error {
	if launchID == "" {
		return fmt.Errorf("launch id is required")
	}

	ids, err := s.List(ctx)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if id == launchID {
			return nil // already saved
		}
	}

	ids = append(ids, launchID)
	return s.save(ctx, ids)
}

func (s *favoritesService) Remove(ctx context.Context, launchID string) error {
	ids, err := s.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != launchID {
			kept = append(kept, id)
		}
	}

	if len(kept) == len(ids) {
		return nil // nothing to remove
	}
	return s.save(ctx, kept)
}

// Toggle flips membership and reports the new state: true when the launch
// is now a favorite.
func (s *favoritesService) Toggle(ctx context.Context, launchID string) (bool, error) {
	saved, err := s.IsFavorite(ctx, launchID)
	if err != nil {
		return false, err
	}

	if saved {
		return false, s.Remove(ctx, launchID)
	}
	return true, s.Add(ctx, launchID)
}

func (s *favoritesService) IsFavorite(ctx context.Context, launchID string) (bool, error) {
	ids, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == launchID {
			return true, nil
		}
	}
	return false, nil
}

func (s *favoritesService) save(ctx context.Context, ids []string) error {
	if err := s.cacheRepo.SetJSON(ctx, favoritesKey, ids, 0); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	return nil
}
