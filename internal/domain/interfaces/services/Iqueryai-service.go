package Iservices

import "kivo-assistant/internal/domain/dto"

type IQueryAIService interface {
	ExecuteQueryAI(queryText string, systemPrompt string) (dto.QueryAIResponse, error)
}
