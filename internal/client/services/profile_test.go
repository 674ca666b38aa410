package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriapp/nutricli/internal/client/models"
)

type recordingProfileClient struct {
	stubClient
	created *models.ProfileInput
	edited  *models.ProfileInput
}

func (c *recordingProfileClient) CreateUser(ctx context.Context, in models.ProfileInput) (*models.UserProfile, error) {
	c.created = &in
	return &models.UserProfile{ID: "u1", Name: in.Name, RequiredCalories: 2000}, nil
}

func (c *recordingProfileClient) EditProfile(ctx context.Context, in models.ProfileInput) (*models.UserProfile, error) {
	c.edited = &in
	return &models.UserProfile{ID: "u1", Name: in.Name}, nil
}

func validInput() models.ProfileInput {
	return models.ProfileInput{
		Name: "Ana", Age: 30, WeightKg: 60, HeightCm: 165,
		Gender: "female", ActivityLevelID: 2, ObjectiveID: 3,
	}
}

func TestCreateSubmitsValidProfile(t *testing.T) {
	client := &recordingProfileClient{}
	svc := NewProfileService(client)

	profile, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "u1", profile.ID)
	assert.Equal(t, 2000.0, profile.RequiredCalories.Float64())
	require.NotNil(t, client.created)
}

func TestCreateBlocksOnValidationError(t *testing.T) {
	client := &recordingProfileClient{}
	svc := NewProfileService(client)

	in := validInput()
	in.Age = 0
	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, models.ErrInvalidProfile)
	// Nothing may leave the machine when validation fails.
	assert.Nil(t, client.created)
}

func TestEditBlocksOnValidationError(t *testing.T) {
	client := &recordingProfileClient{}
	svc := NewProfileService(client)

	in := validInput()
	in.Gender = "unknown"
	_, err := svc.Edit(context.Background(), in)
	assert.ErrorIs(t, err, models.ErrInvalidProfile)
	assert.Nil(t, client.edited)
}

func TestEditSubmitsValidProfile(t *testing.T) {
	client := &recordingProfileClient{}
	svc := NewProfileService(client)

	_, err := svc.Edit(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, client.edited)
	assert.Equal(t, "Ana", client.edited.Name)
}
