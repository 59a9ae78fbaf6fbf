package api

type MessageRole string

const (
	Assistant MessageRole = "assistant"
	User      MessageRole = "user"
	System    MessageRole = "system"
)

type ChatMessage struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// chatResponse is the part of the relayed Ollama chat reply the client reads.
// Every other field is left undecoded.
type chatResponse struct {
	Message *struct {
		Content string `json:"content"`
	} `json:"message"`
}
