/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// The lookup socket lets the game client query the compiled catalog
// without a request per lookup.
//
// Client messages:
//   {"type": "list"}                              → {"type": "names", "names": [...]}
//   {"type": "variant", "name": "No Variant"}     → {"type": "variant", "variant": {...}}
//   {"type": "match", "name": "...", "note": "r1"} → {"type": "identity", ...}
// Anything else, or an unknown variant, gets {"type": "error", "message": "..."}.

package main

import (
	"log"
	"net/http"

	"github.com/Seednode/hanabi-variants/variants"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Messages coming from clients
type LookupMessage struct {
	Type string `json:"type"`           // "list", "variant", "match"
	Name string `json:"name,omitempty"` // variant / match
	Note string `json:"note,omitempty"` // match
}

// Messages sent to clients
type NamesMessage struct {
	Type  string   `json:"type"` // "names"
	Names []string `json:"names"`
}

type VariantMessage struct {
	Type    string            `json:"type"` // "variant"
	Variant *variants.Variant `json:"variant"`
}

type IdentityMessage struct {
	Type string `json:"type"` // "identity"
	identityResponse
}

type ErrorMessage struct {
	Type    string `json:"type"` // "error"
	Message string `json:"message"`
}

type lookupClient struct {
	conn *websocket.Conn
	send chan any
}

func (c *lookupClient) readPump(reg *Registry) {
	defer close(c.send)

	for {
		var msg LookupMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		c.send <- answerLookup(reg, msg)
	}
}

func (c *lookupClient) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			// Closing unblocks readPump; drain until it gives up.
			_ = c.conn.Close()
			for range c.send {
			}
			return
		}
	}
}

func answerLookup(reg *Registry, msg LookupMessage) any {
	switch msg.Type {
	case "list":
		return NamesMessage{Type: "names", Names: reg.Catalog.Names()}
	case "variant", "match":
		v, ok := reg.Catalog.Get(msg.Name)
		if !ok {
			return ErrorMessage{Type: "error", Message: "unknown variant: " + msg.Name}
		}
		if msg.Type == "variant" {
			return VariantMessage{Type: "variant", Variant: v}
		}
		return IdentityMessage{Type: "identity", identityResponse: matchIdentity(v, msg.Note)}
	default:
		return ErrorMessage{Type: "error", Message: "unknown message type: " + msg.Type}
	}
}

func serveLookupSocket(cfg *Config, reg *Registry, m *metrics) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		m.socketOpened()
		defer m.socketClosed()

		logf(cfg, "SERVE: Lookup socket opened by %s", realIP(r))

		client := &lookupClient{
			conn: conn,
			send: make(chan any, 8),
		}

		done := make(chan struct{})
		go func() {
			client.writePump()
			close(done)
		}()
		client.readPump(reg)
		<-done

		logf(cfg, "SERVE: Lookup socket closed by %s", realIP(r))
	}
}

func registerLookupSocket(cfg *Config, reg *Registry, m *metrics, mux *httprouter.Router) {
	mux.GET(cfg.prefix+"/ws", serveLookupSocket(cfg, reg, m))
}
