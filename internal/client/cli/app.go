package cli

import (
	"bufio"
	"context"
	"errors"
	"os"

	"github.com/nutriapp/nutricli/internal/client/api"
	"github.com/nutriapp/nutricli/internal/client/auth"
	"github.com/nutriapp/nutricli/internal/client/cache"
	"github.com/nutriapp/nutricli/internal/client/config"
	"github.com/nutriapp/nutricli/internal/client/export"
	"github.com/nutriapp/nutricli/internal/client/models"
	"github.com/nutriapp/nutricli/internal/client/services"
	"github.com/nutriapp/nutricli/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pendingAnalysis holds an analysed image between the analyse call and a
// confirmed save. Nothing is persisted until the user saves.
type pendingAnalysis struct {
	filename string
	image    []byte
	result   *models.AnalysisResult
}

type App struct {
	config         *config.Config
	authService    auth.Service
	mealService    services.MealService
	profileService services.ProfileService
	exporter       *export.Pipeline
	log            logging.Logger

	session *auth.Session
	pending *pendingAnalysis
	Mode    Mode
	reader  *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	app := &App{config: c, log: log, Mode: ModeOnline, reader: bufio.NewReader(os.Stdin)}

	db, err := cache.Open(ctx, c.CachePath)
	if err != nil {
		log.Error(ctx, "error initializing cache database", "error", err)
		return nil, err
	}

	apiClient, err := api.NewRestClient(c.APIBaseURL, c.RequestTimeout, func() string {
		if app.session != nil {
			return app.session.AccessToken
		}
		return ""
	})
	if err != nil {
		return nil, err
	}

	as, err := auth.NewService(c.AuthBaseURL, c.AuthAPIKey, c.RequestTimeout)
	if err != nil {
		if !errors.Is(err, auth.ErrNotConfigured) {
			return nil, err
		}
		// Auth commands will report the missing configuration.
		log.Warn(ctx, "auth provider is not configured")
	}
	app.authService = as

	app.mealService = services.NewMealService(apiClient, cache.NewRepository(db), log)
	app.profileService = services.NewProfileService(apiClient)
	app.exporter = export.NewPipeline(apiClient, c.ExportDir, nil, log)

	return app, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		printlnFn("Switched to " + string(mode) + " mode")
	}
}

func (a *App) isLoggedIn() bool {
	return a.session != nil && a.session.AccessToken != ""
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
