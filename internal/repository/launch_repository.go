package repository

import (
	"context"

	"lyra/internal/clients"
	"lyra/internal/models"
)

// LaunchRepository mediates between the SpaceX client and the services.
// It stays deliberately thin: partitioning is a pure filter and everything
// else delegates, so business rules live in one place, the service layer.
type LaunchRepository interface {
	GetAllLaunches(ctx context.Context) ([]models.Launch, error)
	GetPastLaunches(ctx context.Context) ([]models.Launch, error)
	GetUpcomingLaunches(ctx context.Context) ([]models.Launch, error)
	GetLaunchByID(ctx context.Context, id string) (*models.Launch, error)
	GetRocketByID(ctx context.Context, id string) (*models.RocketDetail, error)
	GetLaunchpadByID(ctx context.Context, id string) (*models.LaunchpadDetail, error)
}

type launchRepository struct {
	client clients.SpaceXClient
}

func NewLaunchRepository(client clients.SpaceXClient) LaunchRepository {
	return &launchRepository{client: client}
}

func (r *launchRepository) GetAllLaunches(ctx context.Context) ([]models.Launch, error) {
	return r.client.GetLaunches(ctx)
}

// GetPastLaunches returns every launch with upcoming=false. Together with
// GetUpcomingLaunches the partitions are disjoint and exhaustive.
func (r *launchRepository) GetPastLaunches(ctx context.Context) ([]models.Launch, error) {
	launches, err := r.client.GetLaunches(ctx)
	if err != nil {
		return nil, err
	}

	past := make([]models.Launch, 0, len(launches))
	for _, launch := range launches {
		if !launch.Upcoming {
			past = append(past, launch)
		}
	}
	return past, nil
}

func (r *launchRepository) GetUpcomingLaunches(ctx context.Context) ([]models.Launch, error) {
	launches, err := r.client.GetLaunches(ctx)
	if err != nil {
		return nil, err
	}

	upcoming := make([]models.Launch, 0, len(launches))
	for _, launch := range launches {
		if launch.Upcoming {
			upcoming = append(upcoming, launch)
		}
	}
	return upcoming, nil
}

func (r *launchRepository) GetLaunchByID(ctx context.Context, id string) (*models.Launch, error) {
	return r.client.GetLaunchByID(ctx, id)
}

func (r *launchRepository) GetRocketByID(ctx context.Context, id string) (*models.RocketDetail, error) {
	return r.client.GetRocketByID(ctx, id)
}

func (r *launchRepository) GetLaunchpadByID(ctx context.Context, id string) (*models.LaunchpadDetail, error) {
	return r.client.GetLaunchpadByID(ctx, id)
}
