package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// previewMessage is sent to preview clients over the WebSocket.
type previewMessage struct {
	Type  string `json:"type"`
	HTML  string `json:"html,omitempty"`
	Error string `json:"error,omitempty"`
}

const (
	previewTypeUpdate = "update"
	previewTypeError  = "error"
)

// PreviewHub manages WebSocket connections for the live preview.
type PreviewHub struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader

	// onCount reports the client count after every connect and disconnect.
	onCount func(n int)
}

// NewPreviewHub creates an empty hub.
func NewPreviewHub() *PreviewHub {
	return &PreviewHub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// The preview is a local development surface.
				return true
			},
		},
	}
}

// HandleWebSocket upgrades the request and keeps the connection registered
// until the client disconnects.
func (h *PreviewHub) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	n := len(h.clients)
	h.mu.Unlock()
	h.reportCount(n)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	n = len(h.clients)
	h.mu.Unlock()
	h.reportCount(n)
	conn.Close()
}

// NotifyUpdate pushes freshly rendered preview HTML to all clients.
func (h *PreviewHub) NotifyUpdate(html string) {
	h.broadcast(previewMessage{Type: previewTypeUpdate, HTML: html})
}

// NotifyError pushes a conversion error to all clients.
func (h *PreviewHub) NotifyError(errMsg string) {
	h.broadcast(previewMessage{Type: previewTypeError, Error: errMsg})
}

func (h *PreviewHub) broadcast(msg previewMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			h.mu.Lock()
			delete(h.clients, client)
			n := len(h.clients)
			h.mu.Unlock()
			h.reportCount(n)
			client.Close()
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *PreviewHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close drops all client connections.
func (h *PreviewHub) Close() {
	h.mu.Lock()
	for client := range h.clients {
		client.Close()
		delete(h.clients, client)
	}
	h.mu.Unlock()
	h.reportCount(0)
}

func (h *PreviewHub) reportCount(n int) {
	if h.onCount != nil {
		h.onCount(n)
	}
}

// previewContentMarker is replaced with the initial rendered HTML when the
// preview page is served.
const previewContentMarker = "<!--domify:content-->"

// previewPage is the live preview shell. The embedded script reconnects
// with backoff and swaps the preview container on each update message.
const previewPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>domify preview</title>
<style>
body { font-family: sans-serif; margin: 0; }
#domify-error { display: none; background: #2b0000; color: #ff8888; font-family: monospace; padding: 16px; white-space: pre-wrap; }
#domify-preview { padding: 16px; }
</style>
</head>
<body>
<div id="domify-error"></div>
<div id="domify-preview"><!--domify:content--></div>
<script>
(function() {
    'use strict';

    var reconnectDelay = 1000;
    var maxReconnectDelay = 30000;

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(protocol + '//' + location.host + '/ws');

        ws.onmessage = function(e) {
            var msg;
            try {
                msg = JSON.parse(e.data);
            } catch (err) {
                return;
            }

            var errBox = document.getElementById('domify-error');
            switch (msg.type) {
                case 'update':
                    document.getElementById('domify-preview').innerHTML = msg.html;
                    errBox.style.display = 'none';
                    break;
                case 'error':
                    errBox.textContent = msg.error;
                    errBox.style.display = 'block';
                    break;
            }
        };

        ws.onopen = function() {
            reconnectDelay = 1000;
        };

        ws.onclose = function() {
            setTimeout(function() {
                reconnectDelay = Math.min(reconnectDelay * 2, maxReconnectDelay);
                connect();
            }, reconnectDelay);
        };

        ws.onerror = function() {
            ws.close();
        };
    }

    connect();
})();
</script>
</body>
</html>
`
