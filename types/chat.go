package types

import "time"

const (
	RoleUser = "user"
	RoleBot  = "bot"
)

type ChatRequest struct {
	Question string `json:"question"`
}

type ChatResponse struct {
	Answer   string `json:"answer"`
	Question string `json:"question"`
}

// ChatTurn is one entry in the client-side conversation. The conversation is
// append-only and lives only for the lifetime of the chat session.
type ChatTurn struct {
	Text      string    `json:"text"`
	Role      string    `json:"role"`
	Timestamp time.Time `json:"timestamp"`
}
