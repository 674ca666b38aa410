package services

import (
	"context"

	"github.com/nutriapp/nutricli/internal/client/api"
	"github.com/nutriapp/nutricli/internal/client/models"
)

// ProfileService manages the user's nutrition profile. Daily targets are
// derived by the backend from the submitted profile; the client only
// reads them back.
type ProfileService interface {
	Me(ctx context.Context) (*models.UserProfile, error)
	Create(ctx context.Context, in models.ProfileInput) (*models.UserProfile, error)
	Edit(ctx context.Context, in models.ProfileInput) (*models.UserProfile, error)
}

type profileService struct {
	client api.Client
}

func NewProfileService(client api.Client) ProfileService {
	return &profileService{client: client}
}

func (s *profileService) Me(ctx context.Context) (*models.UserProfile, error) {
	return s.client.Me(ctx)
}

// Create validates the assembled input before anything leaves the
// machine; any validation error blocks the submission.
func (s *profileService) Create(ctx context.Context, in models.ProfileInput) (*models.UserProfile, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.client.CreateUser(ctx, in)
}

func (s *profileService) Edit(ctx context.Context, in models.ProfileInput) (*models.UserProfile, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.client.EditProfile(ctx, in)
}
