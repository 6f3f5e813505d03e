package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

const motivationFallbackMessage = "I seem to be at a loss for words right now. Please try again in a moment."

type MotivationRequest struct {
	UserName           string `json:"userName"`
	Goal               string `json:"goal"`
	ProgressPercentage int    `json:"progressPercentage"`
	ConsistencyScore   int    `json:"consistencyScore"`
}

type MotivationResponse struct {
	Message string `json:"message"`
}

// MotivationClient fetches a short encouragement line from an external
// generator. The feature is decorative, so the client never returns an
// error: any failure degrades to a canned fallback message.
type MotivationClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewMotivationClient(baseURL string) *MotivationClient {
	return &MotivationClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (client *MotivationClient) Fetch(ctx context.Context, request MotivationRequest) MotivationResponse {
	message, err := client.fetch(ctx, request)
	if err != nil {
		log.Printf("motivation fetch failed: %v", err)
		return MotivationResponse{Message: motivationFallbackMessage}
	}
	return MotivationResponse{Message: message}
}

func (client *MotivationClient) fetch(ctx context.Context, request MotivationRequest) (string, error) {
	if client.baseURL == "" {
		return "", fmt.Errorf("no motivation endpoint configured")
	}

	body, err := json.Marshal(request)
	if err != nil {
		return "", err
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, client.baseURL+"/motivation", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpRequest.Header.Set("Content-Type", "application/json")

	response, err := client.httpClient.Do(httpRequest)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("motivation endpoint returned status %d", response.StatusCode)
	}

	var decoded MotivationResponse
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return "", err
	}
	if decoded.Message == "" {
		return "", fmt.Errorf("motivation endpoint returned an empty message")
	}
	return decoded.Message, nil
}
