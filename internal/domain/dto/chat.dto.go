package dto

// ChatRequest is the payload of the LLM-backed chat endpoint.
type ChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// ChatResponse relays the AI reply back to the browser client.
type ChatResponse struct {
	Response string `json:"response"`
}

// KivoRequest is the payload of the rule-based persona endpoint.
type KivoRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// KivoResponse carries the deterministic reply plus its resolved metadata.
type KivoResponse struct {
	Response  string `json:"response"`
	FinalMode string `json:"final_mode"`
	Emotion   string `json:"emotion"`
}
