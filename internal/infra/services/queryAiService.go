package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"kivo-assistant/internal/config"
	"kivo-assistant/internal/domain/dto"
	"kivo-assistant/internal/infra/logger"
)

type QueryAIService struct {
	Logger *logger.Logger
}

func NewQueryAIService(logger *logger.Logger) *QueryAIService {
	return &QueryAIService{
		Logger: logger,
	}
}

// ExecuteQueryAI forwards a user message, wrapped in the generated system
// prompt, to the external AI query service and returns its reply.
//
// Parameters:
// - queryText (string): The user message to be processed by the AI service.
// - systemPrompt (string): The generated system prompt that frames the query.
//
// Returns:
//   - dto.QueryAIResponse: A structured response object containing the AI's output.
//   - error: Returns an error if the query processing fails or if there is an issue
//     with the integration to the AI service. Returns nil on success.
func (th *QueryAIService) ExecuteQueryAI(queryText string, systemPrompt string) (dto.QueryAIResponse, error) {
	queryAIHost := config.GetEnv("QUERY_AI_API_HOST")
	if queryAIHost == "" {
		err := "QUERY_AI_API_HOST environment variable not set."
		th.Logger.Error(err)
		return dto.QueryAIResponse{}, fmt.Errorf("%s", err)
	}

	payload := map[string]string{
		"query_text":    queryText,
		"system_prompt": systemPrompt,
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		th.Logger.Error(fmt.Sprintf("Failed to marshal payload: %s", err.Error()))
		return dto.QueryAIResponse{}, err
	}

	resp, err := http.Post(queryAIHost+"/query", "application/json", bytes.NewBuffer(payloadBytes))
	if err != nil {
		th.Logger.Error(fmt.Sprintf("Failed to send POST request: %s", err.Error()))
		return dto.QueryAIResponse{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		th.Logger.Error(fmt.Sprintf("Failed to read response body: %s", err.Error()))
		return dto.QueryAIResponse{}, err
	}

	var queryResponse dto.QueryAIResponse
	if err := json.Unmarshal(body, &queryResponse); err != nil {
		th.Logger.Error(fmt.Sprintf("Failed to unmarshal response body: %s", err.Error()))
		return dto.QueryAIResponse{}, fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return queryResponse, nil
}
