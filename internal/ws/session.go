package ws

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"rps_match/internal/match"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	idleWait       = 60 * time.Second
	maxMessageSize = 16 * 1024
)

var sessionSeq atomic.Uint64

// Session serves one connection. Frames are read and answered in order on
// the calling goroutine; a match streams its rounds before the next frame
// is read.
type Session struct {
	ID     uint64
	Conn   *websocket.Conn
	driver *match.Driver
	log    *slog.Logger
}

func NewSession(conn *websocket.Conn, driver *match.Driver, log *slog.Logger) *Session {
	id := sessionSeq.Add(1)
	return &Session{
		ID:     id,
		Conn:   conn,
		driver: driver,
		log:    log.With("component", "ws", "session", id),
	}
}

// Run blocks until the peer disconnects or a write fails.
func (s *Session) Run() {
	defer s.Conn.Close()

	s.Conn.SetReadLimit(maxMessageSize)
	s.Conn.SetReadDeadline(time.Now().Add(idleWait))
	s.Conn.SetPongHandler(func(string) error {
		return s.Conn.SetReadDeadline(time.Now().Add(idleWait))
	})

	if err := s.send(Message{Type: MsgReady}); err != nil {
		s.log.Warn("send ready failed", "error", err)
		return
	}
	s.log.Info("session started")

	for {
		_, raw, err := s.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn("read error", "error", err)
			}
			break
		}
		s.Conn.SetReadDeadline(time.Now().Add(idleWait))

		if err := s.handleMessage(raw); err != nil {
			s.log.Warn("write error", "error", err)
			break
		}
	}

	s.log.Info("session closed")
}

// handleMessage answers one frame. Only write failures are returned;
// bad input is reported to the peer and the session continues.
func (s *Session) handleMessage(raw []byte) error {
	var msg struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		return s.sendError("invalid message: " + err.Error())
	}

	s.log.Debug("message received", "type", msg.Type, "bytes", len(raw))

	switch msg.Type {
	case MsgPing:
		return s.send(Message{Type: MsgPong})
	case MsgPlay:
		return s.play(msg.Payload)
	default:
		return s.sendError(fmt.Sprintf("unknown message type %q", msg.Type))
	}
}

func (s *Session) play(payload json.RawMessage) error {
	var p PlayPayload
	if len(payload) == 0 {
		return s.sendError("play payload required")
	}
	if err := json.Unmarshal(payload, &p); err != nil {
		return s.sendError("invalid play payload: " + err.Error())
	}

	seq, err := match.ParseSequence(p.Player1, p.Player2)
	if err != nil {
		return s.sendError(err.Error())
	}

	var writeErr error
	rep, err := s.driver.Play(seq, func(r match.Round) error {
		writeErr = s.send(Message{Type: MsgRound, Payload: r})
		return writeErr
	})
	if writeErr != nil {
		return writeErr
	}
	if err != nil {
		return s.sendError(err.Error())
	}

	return s.send(Message{Type: MsgResult, Payload: ResultPayload{
		Rounds: len(rep.Rounds),
		Scores: rep.Scores,
		Result: rep.Result,
	}})
}

func (s *Session) sendError(text string) error {
	return s.send(Message{Type: MsgError, Payload: ErrorPayload{Message: text}})
}

func (s *Session) send(msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", msg.Type, err)
	}
	s.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.Conn.WriteMessage(websocket.TextMessage, data)
}
