package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"syscall"
	"time"

	"mantleflow-backend/apperrors"
	"mantleflow-backend/config"
)

// predictionTimeout bounds a single upstream call. There is no retry; the
// caller gets the first failure.
const predictionTimeout = 30 * time.Second

type predictionRequest struct {
	HistoricalData []float64 `json:"historical_data"`
}

// PredictionResult is the AI server's response, passed through to the HTTP
// caller unchanged.
type PredictionResult struct {
	PredictedCashflow float64   `json:"predicted_cashflow"`
	Confidence        float64   `json:"confidence"`
	InputData         []float64 `json:"input_data"`
	DataPoints        int       `json:"data_points"`
	Status            string    `json:"status"`
	Error             string    `json:"error,omitempty"`
}

// PredictionService proxies cash-flow forecasts to the external AI server.
type PredictionService struct {
	endpoint string
	client   *http.Client
}

func NewPredictionService(cfg *config.Config) *PredictionService {
	return &PredictionService{
		endpoint: cfg.AIServerURL,
		client:   &http.Client{Timeout: predictionTimeout},
	}
}

// Predict sends the historical series upstream and returns the forecast.
// Input shape validation happens in the controller before this is called.
func (s *PredictionService) Predict(ctx context.Context, historicalData []float64) (*PredictionResult, error) {
	body, err := json.Marshal(predictionRequest{HistoricalData: historicalData})
	if err != nil {
		return nil, apperrors.Internal("Internal server error", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.Internal("Internal server error", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			return nil, apperrors.Unavailable("AI service unavailable",
				"Could not connect to AI server at "+s.endpoint)
		}
		return nil, apperrors.Internal("Internal server error", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Internal("Internal server error", err)
	}

	var result PredictionResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, apperrors.Internal("Internal server error",
			fmt.Errorf("decode AI server response: %w", err))
	}

	if result.Error != "" {
		log.Printf("AI prediction error: %s", result.Error)
		return nil, apperrors.Prediction("AI prediction failed", result.Error)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.Internal("Internal server error",
			fmt.Errorf("AI server returned status %d", resp.StatusCode))
	}

	return &result, nil
}
