// cmd/veritas/server.go
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

// APIServer exposes the verification pipeline over HTTP
type APIServer struct {
	router   *mux.Router
	verifier *Verifier
	enricher *SourceEnricher
	health   *HealthMonitor
	limiter  *rate.Limiter
	hub      *wsHub
	preview  bool
}

// verifyRequest is the POST /api/verify body
type verifyRequest struct {
	Claim  string `json:"claim"`
	Domain string `json:"domain"`
}

// verifyResponse wraps a result with optional source previews
type verifyResponse struct {
	Result         *VerificationResult `json:"result"`
	SourcePreviews []SourcePreview     `json:"source_previews,omitempty"`
}

// NewAPIServer wires the HTTP routes
func NewAPIServer(cfg *Config, verifier *Verifier, health *HealthMonitor) *APIServer {
	s := &APIServer{
		router:   mux.NewRouter(),
		verifier: verifier,
		enricher: NewSourceEnricher(),
		health:   health,
		limiter:  rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), cfg.RequestsPerMinute),
		hub:      newWSHub(),
		preview:  cfg.EnableSourcePreview,
	}

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/verify", s.handleVerify).Methods("POST")
	api.HandleFunc("/domains", s.handleDomains).Methods("GET")
	api.HandleFunc("/metrics", s.handleMetrics).Methods("GET")
	api.HandleFunc("/status", s.handleStatus).Methods("GET")
	api.HandleFunc("/ws", s.hub.handleWebsocket)

	return s
}

// Start begins serving in a background goroutine
func (s *APIServer) Start(port int) {
	go func() {
		addr := fmt.Sprintf(":%d", port)
		Logger().Info("Starting API server on %s", addr)
		if err := http.ListenAndServe(addr, s.router); err != nil {
			Logger().Error("API server failed: %v", err)
			RecordError(err)
		}
	}()
}

// handleVerify runs the pipeline for a single claim
func (s *APIServer) handleVerify(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.Allow() {
		respondWithError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Claim = strings.TrimSpace(req.Claim)
	if req.Claim == "" {
		respondWithError(w, http.StatusBadRequest, "claim must not be empty")
		return
	}

	result := s.verifier.Verify(r.Context(), req.Claim, req.Domain)

	response := verifyResponse{Result: result}
	if s.preview {
		response.SourcePreviews = s.enricher.Enrich(r.Context(), result.Sources)
	}

	// Fire and forget: a stalled websocket client must not delay the
	// HTTP response
	go s.hub.broadcast(result)
	respondWithJSON(w, http.StatusOK, response)
}

// handleDomains lists the recognized verification domains
func (s *APIServer) handleDomains(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"domains": s.verifier.Domains(),
	})
}

// handleMetrics returns the current metrics snapshot
func (s *APIServer) handleMetrics(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, GetLastMetrics())
}

// handleStatus returns health information
func (s *APIServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, s.health.Status())
}

// respondWithJSON writes a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(data)
}

// respondWithError writes a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// wsHub fans completed verification results out to connected clients
type wsHub struct {
	upgrader websocket.Upgrader
	clients  map[*websocket.Conn]bool
	mutex    sync.Mutex
}

func newWSHub() *wsHub {
	return &wsHub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*websocket.Conn]bool),
	}
}

// handleWebsocket upgrades a connection and registers it for broadcasts
func (h *wsHub) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		Logger().Warning("Websocket upgrade failed: %v", err)
		return
	}

	h.mutex.Lock()
	h.clients[conn] = true
	h.mutex.Unlock()

	// Reader loop only to detect disconnects
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// broadcast sends a result to every connected client
func (h *wsHub) broadcast(result *VerificationResult) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteJSON(result); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *wsHub) drop(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	conn.Close()
	delete(h.clients, conn)
}
