package web

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/RoxanaAnamariaTurc/runner-app/internal/config"
	"github.com/RoxanaAnamariaTurc/runner-app/internal/events"
	"github.com/RoxanaAnamariaTurc/runner-app/internal/i18n"
	appLog "github.com/RoxanaAnamariaTurc/runner-app/internal/log"
	"github.com/RoxanaAnamariaTurc/runner-app/internal/model"
	"github.com/RoxanaAnamariaTurc/runner-app/internal/prefs"
	"github.com/RoxanaAnamariaTurc/runner-app/internal/pricing"
	"github.com/RoxanaAnamariaTurc/runner-app/internal/schedule"
	"github.com/RoxanaAnamariaTurc/runner-app/internal/telemetry"
)

// Server provides the HTTP API: event catalog, pricing, expanded
// schedule (JSON and ICS), language preference and telemetry.
type Server struct {
	cfg      *config.Config
	bundle   *i18n.Bundle
	catalog  *events.Catalog
	resolver *pricing.Resolver
	expander *schedule.Expander
	prefs    *prefs.Store
	metrics  *telemetry.Collector
	router   *mux.Router

	// now is overridable in tests.
	now func() time.Time

	// In-memory cache for expanded schedule responses to avoid redundant
	// recurrence expansion on every HTTP request.
	scheduleMu    sync.RWMutex
	scheduleCache *scheduleCache
}

// NewServer constructs a Server over already-built components.
func NewServer(cfg *config.Config, bundle *i18n.Bundle, catalog *events.Catalog,
	resolver *pricing.Resolver, expander *schedule.Expander,
	store *prefs.Store, metrics *telemetry.Collector) *Server {
	s := &Server{
		cfg:      cfg,
		bundle:   bundle,
		catalog:  catalog,
		resolver: resolver,
		expander: expander,
		prefs:    store,
		metrics:  metrics,
		router:   mux.NewRouter(),
		now:      time.Now,
	}
	s.registerRoutes()
	return s
}

// Handler returns the underlying http.Handler for this server.
func (s *Server) Handler() http.Handler {
	h := http.Handler(s.router)
	if s.basicAuthEnabled() {
		appLog.Info("HTTP basic auth enabled", "listen", "http://"+s.cfg.Listen)
		return s.basicAuthMiddleware(h)
	}
	return h
}

func (s *Server) basicAuthEnabled() bool {
	if s.cfg == nil || s.cfg.BasicAuth == nil {
		return false
	}
	if s.cfg.BasicAuth.Username == "" || s.cfg.BasicAuth.Password == "" {
		return false
	}
	return true
}

// basicAuthMiddleware wraps all handlers except /health with HTTP Basic Auth.
func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	username := s.cfg.BasicAuth.Username
	password := s.cfg.BasicAuth.Password

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		u, p, ok := r.BasicAuth()
		if !ok || !secureCompare(u, username) || !secureCompare(p, password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="RunnerApp", charset="UTF-8"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// secureCompare compares two strings in constant time.
func secureCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (s *Server) registerRoutes() {
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/api/config", s.handleConfig).Methods(http.MethodGet)
	s.router.HandleFunc("/api/events", s.handleEvents).Methods(http.MethodGet)
	s.router.HandleFunc("/api/events/{id:[0-9]+}", s.handleEvent).Methods(http.MethodGet)
	s.router.HandleFunc("/api/pricing", s.handlePricing).Methods(http.MethodGet)
	s.router.HandleFunc("/api/schedule", s.handleSchedule).Methods(http.MethodGet)
	s.router.HandleFunc("/api/schedule.ics", s.handleScheduleICS).Methods(http.MethodGet)
	s.router.HandleFunc("/api/language", s.handleLanguageGet).Methods(http.MethodGet)
	s.router.HandleFunc("/api/language", s.handleLanguagePut).Methods(http.MethodPut)
	s.router.HandleFunc("/api/telemetry", s.handleTelemetryGet).Methods(http.MethodGet)
	s.router.HandleFunc("/api/telemetry", s.handleTelemetryPost).Methods(http.MethodPost)
	s.router.HandleFunc("/api/i18n/{lang}", s.handleI18n).Methods(http.MethodGet)
}

// language resolves the effective language for a request: explicit
// ?lang= query first, then the saved preference, then the configured
// default.
func (s *Server) language(r *http.Request) i18n.Language {
	if lang, ok := i18n.Parse(r.URL.Query().Get("lang")); ok {
		return lang
	}
	if s.prefs != nil {
		if lang, ok, err := s.prefs.Load(); err == nil && ok {
			return lang
		}
	}
	if lang, ok := i18n.Parse(s.cfg.DefaultLanguage); ok {
		return lang
	}
	return i18n.Romanian
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// configResponse is the JSON response shape for /api/config. Credentials
// never leave the process.
type configResponse struct {
	Languages       []i18n.Language `json:"languages"`
	Timezone        string          `json:"timezone"`
	DefaultLanguage string          `json:"default_language"`
	HorizonDays     int             `json:"horizon_days"`
}

func (s *Server) handleConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, configResponse{
		Languages:       i18n.Languages(),
		Timezone:        s.cfg.Timezone,
		DefaultLanguage: s.cfg.DefaultLanguage,
		HorizonDays:     s.cfg.HorizonDays,
	})
}

// eventsResponse is the JSON response shape for /api/events.
type eventsResponse struct {
	Language i18n.Language      `json:"language"`
	Events   []events.Localized `json:"events"`
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)
	writeJSON(w, http.StatusOK, eventsResponse{
		Language: lang,
		Events:   s.catalog.LocalizeAll(s.catalog.All(), s.now(), lang),
	})
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)

	id := parseIntDefault(mux.Vars(r)["id"], -1)
	ev, ok := s.catalog.ByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, s.bundle.T(lang, "eventNotFound"))
		return
	}
	writeJSON(w, http.StatusOK, s.catalog.Localize(ev, s.now(), lang))
}

func (s *Server) handlePricing(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)
	now := s.now()

	type pricingResponse struct {
		Language i18n.Language       `json:"language"`
		Query    pricing.QueryResult `json:"query"`
		Prices   pricing.Prices      `json:"prices"`
		Open     bool                `json:"registration_open"`
	}
	writeJSON(w, http.StatusOK, pricingResponse{
		Language: lang,
		Query:    s.resolver.Query(now),
		Prices:   s.resolver.CurrentPrices(now, s.bundle, lang),
		Open:     s.resolver.RegistrationOpen(now),
	})
}

// scheduleResponse is the JSON response shape for /api/schedule.
type scheduleResponse struct {
	Occurrences []model.Occurrence `json:"occurrences"`
	RangeStart  time.Time          `json:"range_start"`
	RangeEnd    time.Time          `json:"range_end"`
	Timezone    string             `json:"timezone"`
}

// scheduleCache holds a cached /api/schedule response and its timestamp.
type scheduleCache struct {
	resp      scheduleResponse
	days      int
	updatedAt time.Time
}

// handleSchedule returns expanded session occurrences within a requested
// horizon.
//
// GET /api/schedule?days=14
//
// A small in-memory cache avoids repeating recurrence expansion on every
// HTTP request; session times do not need sub-second freshness.
func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	days := parseIntDefault(r.URL.Query().Get("days"), s.cfg.HorizonDays)
	if days <= 0 {
		days = s.cfg.HorizonDays
	}

	const scheduleCacheTTL = 30 * time.Second
	cacheNow := time.Now()

	s.scheduleMu.RLock()
	sc := s.scheduleCache
	s.scheduleMu.RUnlock()
	if sc != nil && sc.days == days && cacheNow.Sub(sc.updatedAt) < scheduleCacheTTL {
		writeJSON(w, http.StatusOK, sc.resp)
		return
	}

	now := s.now()
	occs, err := s.expander.Upcoming(now, days)
	if err != nil {
		appLog.Error("schedule expansion failed", err, "days", days)
		writeError(w, http.StatusInternalServerError, "failed to expand schedule")
		return
	}

	resp := scheduleResponse{
		Occurrences: occs,
		RangeStart:  now,
		RangeEnd:    now.AddDate(0, 0, days),
		Timezone:    s.cfg.Timezone,
	}

	s.scheduleMu.Lock()
	s.scheduleCache = &scheduleCache{resp: resp, days: days, updatedAt: time.Now()}
	s.scheduleMu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleScheduleICS(w http.ResponseWriter, r *http.Request) {
	days := parseIntDefault(r.URL.Query().Get("days"), s.cfg.HorizonDays)
	if days <= 0 {
		days = s.cfg.HorizonDays
	}

	now := s.now()
	occs, err := s.expander.Upcoming(now, days)
	if err != nil {
		appLog.Error("schedule expansion failed", err, "days", days)
		writeError(w, http.StatusInternalServerError, "failed to expand schedule")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="crosul-sperantei.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(schedule.BuildICS(occs, now)))
}

// languageResponse is the JSON response shape for /api/language.
type languageResponse struct {
	Language i18n.Language `json:"language"`
	Saved    bool          `json:"saved"`
}

func (s *Server) handleLanguageGet(w http.ResponseWriter, _ *http.Request) {
	lang, ok, err := s.prefs.Load()
	if err != nil {
		appLog.Error("language preference load failed", err)
		writeError(w, http.StatusInternalServerError, "failed to load language preference")
		return
	}
	if !ok {
		if def, defOK := i18n.Parse(s.cfg.DefaultLanguage); defOK {
			lang = def
		} else {
			lang = i18n.Romanian
		}
	}
	writeJSON(w, http.StatusOK, languageResponse{Language: lang, Saved: ok})
}

func (s *Server) handleLanguagePut(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	lang, ok := i18n.Parse(req.Language)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported language")
		return
	}
	if err := s.prefs.Save(lang); err != nil {
		appLog.Error("language preference save failed", err, "language", string(lang))
		writeError(w, http.StatusInternalServerError, "failed to save language preference")
		return
	}
	appLog.Info("language preference saved", "language", string(lang))
	writeJSON(w, http.StatusOK, languageResponse{Language: lang, Saved: true})
}

func (s *Server) handleTelemetryGet(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.metrics.Snapshot())
}

func (s *Server) handleTelemetryPost(w http.ResponseWriter, r *http.Request) {
	var sample telemetry.Sample
	if err := json.NewDecoder(r.Body).Decode(&sample); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.metrics.Record(sample)
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleI18n(w http.ResponseWriter, r *http.Request) {
	lang, ok := i18n.Parse(mux.Vars(r)["lang"])
	if !ok {
		writeError(w, http.StatusNotFound, "unsupported language")
		return
	}
	writeJSON(w, http.StatusOK, s.bundle.Table(lang))
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		appLog.Error("failed to write JSON response", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	type errResp struct {
		Error string `json:"error"`
	}
	writeJSON(w, status, errResp{Error: msg})
}
