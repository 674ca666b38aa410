package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nutriapp/nutricli/internal/client/models"
)

// TokenSource yields the current bearer credential. It is a function so
// the auth layer can rotate tokens without sharing mutable state with
// the client.
type TokenSource func() string

// RestClient implements Client over net/http.
type RestClient struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

// NewRestClient builds a client for the given base URL. The URL must be
// non-empty; timeout bounds every request end to end.
func NewRestClient(baseURL string, timeout time.Duration, token TokenSource) (*RestClient, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, ErrNotConfigured
	}
	return &RestClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
	}, nil
}

func (c *RestClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if t := c.token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}
	return req, nil
}

// do executes req and returns the body of a 2xx response. Transport
// failures map to ErrUnavailable unless the context was cancelled, in
// which case the context error is returned unchanged so callers can
// treat cancellation as a silent outcome.
func (c *RestClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return body, nil
}

func (c *RestClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	body, err := c.do(req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func (c *RestClient) HistoryMeals(ctx context.Context) ([]models.Meal, error) {
	var meals []models.Meal
	if err := c.getJSON(ctx, "/history_meals", &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

func (c *RestClient) MealDetail(ctx context.Context, id string) (*models.MealDetail, error) {
	var detail models.MealDetail
	if err := c.getJSON(ctx, "/history_meals/"+url.PathEscape(id), &detail); err != nil {
		return nil, err
	}
	if detail.Meal.ID == "" {
		return nil, fmt.Errorf("%w: meal detail without a meal", ErrMalformedResponse)
	}
	return &detail, nil
}

func (c *RestClient) DeleteMeal(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/delete_meal/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

func (c *RestClient) DaySummary(ctx context.Context, date string) (*models.DaySummary, error) {
	q := url.Values{}
	q.Set("date", date)
	var summary models.DaySummary
	if err := c.getJSON(ctx, "/meals/day?"+q.Encode(), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *RestClient) ExportHistory(ctx context.Context, format, fromDate, toDate string) ([]byte, error) {
	q := url.Values{}
	q.Set("format", format)
	if fromDate != "" {
		q.Set("from_date", fromDate)
	}
	if toDate != "" {
		q.Set("to_date", toDate)
	}
	req, err := c.newRequest(ctx, http.MethodGet, "/meals/export_history?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "*/*")
	return c.do(req)
}

func (c *RestClient) AnalyseMeal(ctx context.Context, filename string, image []byte) (*models.AnalysisResult, error) {
	body, contentType, err := imageForm(filename, image, nil)
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/analyse_meal", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	raw, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var result models.AnalysisResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if result.Analysis.Empty() {
		return nil, ErrNoFoodDetected
	}
	return &result, nil
}

func (c *RestClient) SaveAnalysis(ctx context.Context, filename string, image []byte, analysis models.Analysis, recommendation string) (*models.Meal, error) {
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return nil, err
	}
	body, contentType, err := imageForm(filename, image, map[string]string{
		"analysis":       string(analysisJSON),
		"recommendation": recommendation,
	})
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/save_analysis", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	raw, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var meal models.Meal
	if err := json.Unmarshal(raw, &meal); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &meal, nil
}

func (c *RestClient) Me(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.getJSON(ctx, "/users/me", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *RestClient) sendProfile(ctx context.Context, method, path string, in models.ProfileInput) (*models.UserProfile, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, method, path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	raw, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var profile models.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		// /users answers with the upserted row wrapped in an array.
		var rows []models.UserProfile
		if err2 := json.Unmarshal(raw, &rows); err2 != nil || len(rows) == 0 {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		profile = rows[0]
	}
	return &profile, nil
}

func (c *RestClient) CreateUser(ctx context.Context, in models.ProfileInput) (*models.UserProfile, error) {
	return c.sendProfile(ctx, http.MethodPost, "/users", in)
}

func (c *RestClient) EditProfile(ctx context.Context, in models.ProfileInput) (*models.UserProfile, error) {
	return c.sendProfile(ctx, http.MethodPut, "/users/edit_profile", in)
}

// imageForm builds a multipart body with the image under the "image"
// field plus any extra text fields.
func imageForm(filename string, image []byte, fields map[string]string) (io.Reader, string, error) {
	if len(image) == 0 {
		return nil, "", errors.New("image is empty")
	}
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(image); err != nil {
		return nil, "", err
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
