package service

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Prakash1256/PDF-AI-CHAT/types"
)

// WebSocketService answers questions over a websocket connection using the
// same pipeline as the HTTP chat endpoint: one answer frame per question, no
// token streaming.
type WebSocketService struct {
	answers  *AnswerService
	upgrader websocket.Upgrader
}

func NewWebSocketService(answers *AnswerService) *WebSocketService {
	return &WebSocketService{
		answers: answers,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
	}
}

func (s *WebSocketService) HandleChat(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(64 * 1024)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		var req types.WebsocketRequest
		if err := json.Unmarshal(p, &req); err != nil {
			s.writeError(conn, "Invalid request body")
			continue
		}

		switch req.Type {
		case types.TypeWebsocketChat:
			payloadBytes, err := json.Marshal(req.Payload)
			if err != nil {
				s.writeError(conn, "Invalid request body")
				continue
			}
			var payload types.WebSocketChatPayload
			if err := json.Unmarshal(payloadBytes, &payload); err != nil {
				s.writeError(conn, "Invalid request body")
				continue
			}

			question := strings.TrimSpace(payload.Question)
			if question == "" {
				s.writeError(conn, "Question is required")
				continue
			}

			answer := s.answers.Answer(ctx, question)
			res := types.WebSocketResponse{
				Type: types.TypeWebsocketChat,
				Payload: types.ChatResponse{
					Answer:   answer,
					Question: question,
				},
			}
			if err := conn.WriteJSON(res); err != nil {
				log.Println("Write error:", err)
			}
		case types.TypeWebsocketPing:
			res := types.WebSocketResponse{
				Type: types.TypeWebsocketPong,
			}
			if err := conn.WriteJSON(res); err != nil {
				log.Println("Write error:", err)
			}
		default:
			s.writeError(conn, "Invalid message type")
		}
	}
}

func (s *WebSocketService) writeError(conn *websocket.Conn, message string) {
	res := types.WebSocketResponse{
		Type:    types.TypeWebsocketError,
		Payload: types.WebSocketErrorResponse{Error: message},
	}
	if err := conn.WriteJSON(res); err != nil {
		log.Println("Write error:", err)
	}
}
