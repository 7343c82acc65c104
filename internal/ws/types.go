package ws

const (
	// client - server
	MsgPlay = "play"
	MsgPing = "ping"

	// server - client
	MsgReady  = "ready"
	MsgPong   = "pong"
	MsgRound  = "round"
	MsgResult = "result"
	MsgError  = "error"
)

// Message is the envelope of every frame in both directions.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}
