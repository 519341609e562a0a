package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"

	"gems-assistant/internal/chat"
	"gems-assistant/pkg/log"
)

const (
	// maxMessageBytes bounds a single websocket chat frame.
	maxMessageBytes = 4096
	bufferSize      = 1024
)

type handler struct {
	l        log.Logger
	resolver chat.Resolver
	upgrader websocket.Upgrader
}

// New creates the chat HTTP handler. An empty allowedOrigins accepts
// websocket upgrades from any origin.
func New(l log.Logger, r chat.Resolver, allowedOrigins []string) *handler {
	return &handler{
		l:        l,
		resolver: r,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  bufferSize,
			WriteBufferSize: bufferSize,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	hosts := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			hosts[strings.ToLower(u.Host)] = struct{}{}
		}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		_, ok := hosts[strings.ToLower(u.Host)]
		return ok
	}
}
