// Package api is the REST client for the nutriapp backend. It owns
// request shaping (bearer auth, request ids, multipart uploads), the
// error taxonomy, and parse-don't-trust decoding of responses.
package api

import (
	"context"

	"github.com/nutriapp/nutricli/internal/client/models"
)

// Client is the operation set the services need from the backend.
type Client interface {
	HistoryMeals(ctx context.Context) ([]models.Meal, error)
	MealDetail(ctx context.Context, id string) (*models.MealDetail, error)
	DeleteMeal(ctx context.Context, id string) error
	DaySummary(ctx context.Context, date string) (*models.DaySummary, error)
	ExportHistory(ctx context.Context, format, fromDate, toDate string) ([]byte, error)
	AnalyseMeal(ctx context.Context, filename string, image []byte) (*models.AnalysisResult, error)
	SaveAnalysis(ctx context.Context, filename string, image []byte, analysis models.Analysis, recommendation string) (*models.Meal, error)
	Me(ctx context.Context) (*models.UserProfile, error)
	CreateUser(ctx context.Context, in models.ProfileInput) (*models.UserProfile, error)
	EditProfile(ctx context.Context, in models.ProfileInput) (*models.UserProfile, error)
}
