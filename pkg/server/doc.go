// Package server exposes the converter over HTTP: a conversion endpoint
// returning JSON, msgpack, or rendered HTML, plus health, Prometheus
// metrics, and a WebSocket-driven live preview of a watched markup file.
package server
