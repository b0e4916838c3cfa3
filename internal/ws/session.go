package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"portfolio-api/internal/usecase"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 16 * 1024
)

type chatRequest struct {
	Message *string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Session is one websocket connection. Frames are answered in order by a
// single read loop; writes go through the write pump.
type Session struct {
	hub     *Hub
	conn    *websocket.Conn
	chatbot usecase.ChatbotUsecase
	logger  *zap.Logger

	send      chan chatResponse
	done      chan struct{}
	closeOnce sync.Once
}

func newSession(hub *Hub, conn *websocket.Conn, chatbot usecase.ChatbotUsecase, logger *zap.Logger) *Session {
	return &Session{
		hub:     hub,
		conn:    conn,
		chatbot: chatbot,
		logger:  logger,
		send:    make(chan chatResponse, 16),
		done:    make(chan struct{}),
	}
}

func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		_ = s.conn.Close()
	})
}

func (s *Session) readPump(ctx context.Context) {
	defer func() {
		s.hub.Unregister(s)
		s.Close()
	}()

	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("ws read failed", zap.Error(err))
			}
			return
		}

		var req chatRequest
		if err := json.Unmarshal(data, &req); err != nil || req.Message == nil {
			s.enqueue(chatResponse{Error: "invalid message"})
			continue
		}

		reply, err := s.chatbot.Chat(ctx, *req.Message)
		if err != nil {
			s.logger.Error("ws chat failed", zap.Error(err))
			s.enqueue(chatResponse{Error: "internal server error"})
			continue
		}
		s.enqueue(chatResponse{Response: reply.Response})
	}
}

func (s *Session) enqueue(r chatResponse) {
	select {
	case s.send <- r:
	case <-s.done:
	}
}

func (s *Session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.Close()
	}()

	for {
		select {
		case <-s.done:
			return
		case r := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteJSON(r); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
