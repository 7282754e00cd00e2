package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/portfolio-site/pkg/catalog"
	"github.com/portfolio-site/pkg/contact"
)

// Refresher issues an out-of-band token fetch.
type Refresher interface {
	Trigger()
}

// Options tunes the HTTP surface.
type Options struct {
	Port              int
	ContactRatePerMin int
	RefreshCooldown   time.Duration
	TrustForwarded    bool
}

type Server struct {
	feed     *TokenFeed
	refresh  Refresher
	contact  *contact.Service
	limiter  *ipLimiter
	cooldown *rate.Limiter
	opts     Options
}

func New(feed *TokenFeed, refresh Refresher, svc *contact.Service, opts Options) *Server {
	return &Server{
		feed:     feed,
		refresh:  refresh,
		contact:  svc,
		limiter:  newIPLimiter(opts.ContactRatePerMin),
		cooldown: newCooldown(opts.RefreshCooldown),
		opts:     opts,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// API endpoints
	mux.HandleFunc("/api/tokens", cors(s.handleTokens))
	mux.HandleFunc("/api/tokens/refresh", cors(s.handleRefresh))
	mux.HandleFunc("/api/projects", cors(s.handleProjects))
	mux.HandleFunc("/api/projects/", cors(s.handleProjectDetail))
	mux.HandleFunc("/api/profile", cors(s.handleProfile))
	mux.HandleFunc("/api/contact", cors(s.handleContact))

	// Serve frontend
	mux.HandleFunc("/", s.serveFrontend)

	return mux
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.opts.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", addr).Msg("🌐 site server started")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func cors(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(200)
			return
		}
		h(w, r)
	}
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	writeJSONStatus(w, http.StatusOK, data)
}

func writeJSONStatus(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// ---- Tokens ----

func (s *Server) handleTokens(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.feed.Panel())
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "POST only", 405)
		return
	}
	if !s.cooldown.Allow() {
		writeJSONStatus(w, http.StatusTooManyRequests, map[string]string{"status": "busy"})
		return
	}
	s.refresh.Trigger()
	writeJSONStatus(w, http.StatusAccepted, map[string]string{"status": "ok"})
}

// ---- Projects ----

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	c := r.URL.Query().Get("category")
	if c == "" || c == "all" {
		writeJSON(w, catalog.All())
		return
	}
	cat := catalog.Category(c)
	if !cat.Valid() {
		http.Error(w, "unknown category", 400)
		return
	}
	writeJSON(w, catalog.ByCategory(cat))
}

func (s *Server) handleProjectDetail(w http.ResponseWriter, r *http.Request) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/projects/"), "/")
	if id == "" {
		writeJSON(w, catalog.All())
		return
	}
	if id == "featured" {
		writeJSON(w, catalog.Featured())
		return
	}
	p, ok := catalog.ByID(id)
	if !ok {
		http.Error(w, "not found", 404)
		return
	}
	writeJSON(w, p)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, catalog.Me())
}

// ---- Contact ----

type contactResponse struct {
	Status  contact.Status `json:"status"`
	Message string         `json:"message"`
	ID      string         `json:"id,omitempty"`
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "POST only", 405)
		return
	}
	ip := clientIP(r, s.opts.TrustForwarded)
	if !s.limiter.Allow(ip) {
		log.Warn().Str("ip", ip).Msg("contact rate limit exceeded")
		writeJSONStatus(w, http.StatusTooManyRequests, contactResponse{
			Status:  contact.StatusError,
			Message: "Too many messages. Please try again later.",
		})
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 64<<10))
	if err != nil {
		writeJSONStatus(w, http.StatusBadRequest, contactResponse{Status: contact.StatusError, Message: "could not read request body"})
		return
	}
	var sub contact.Submission
	if err := json.Unmarshal(body, &sub); err != nil {
		http.Error(w, "invalid json", 400)
		return
	}
	sub.RemoteIP = ip

	msg, err := s.contact.Submit(r.Context(), sub)
	switch {
	case errors.Is(err, contact.ErrMissingField), errors.Is(err, contact.ErrInvalidEmail):
		writeJSONStatus(w, http.StatusBadRequest, contactResponse{Status: contact.StatusFor(err), Message: err.Error()})
		return
	case err != nil:
		log.Error().Err(err).Msg("contact submit failed")
		writeJSONStatus(w, http.StatusInternalServerError, contactResponse{Status: contact.StatusFor(err), Message: "Something went wrong. Please try again."})
		return
	}

	writeJSON(w, contactResponse{Status: contact.StatusSuccess, Message: contact.SuccessMessage, ID: msg.ID})
}
