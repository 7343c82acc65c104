package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gorilla/websocket"

	"rps_match/internal/match"
	"rps_match/internal/ws"
)

// Dials a running server and plays the predefined match over /ws.
func main() {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	addr := flag.String("addr", "127.0.0.1:"+port, "server host:port (127.0.0.1 avoids resolving to [::1])")
	flag.Parse()

	url := fmt.Sprintf("ws://%s/ws", *addr)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		log.Fatalf("dial %s: %v", url, err)
	}
	defer conn.Close()

	var hello ws.Message
	if err := conn.ReadJSON(&hello); err != nil || hello.Type != ws.MsgReady {
		log.Fatalf("expected ready, got %+v (err=%v)", hello, err)
	}

	seq := match.DefaultSequence()
	var p ws.PlayPayload
	for i := range seq.Player1 {
		p.Player1 = append(p.Player1, seq.Player1[i].String())
		p.Player2 = append(p.Player2, seq.Player2[i].String())
	}
	if err := conn.WriteJSON(ws.Message{Type: ws.MsgPlay, Payload: p}); err != nil {
		log.Fatalf("write play: %v", err)
	}

	for {
		conn.SetReadDeadline(time.Now().Add(10 * time.Second))
		var msg ws.Message
		if err := conn.ReadJSON(&msg); err != nil {
			log.Fatalf("read: %v", err)
		}
		log.Printf("%s: %v", msg.Type, msg.Payload)

		switch msg.Type {
		case ws.MsgResult:
			log.Println("smoke ok")
			return
		case ws.MsgError:
			log.Fatalf("server error: %v", msg.Payload)
		}
	}
}
