// Package server exposes the word clock over HTTP: the board's settings
// form posts to /update and /grid reports what the board shows.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"wordclock/internal/clock"
	"wordclock/internal/display"
	"wordclock/internal/grid"
	"wordclock/internal/wordclock"
)

const maxBodySize = 4 << 10

// Options configures a Server. Clock, Coin and Logger default to the
// system clock, a time-seeded coin and a no-op logger.
type Options struct {
	Variant    wordclock.Variant
	Color      tcell.Color
	Brightness display.Brightness
	Clock      clock.Source
	Coin       wordclock.Coin
	Logger     *zap.Logger

	// OnUpdate, when set, receives the settings after every accepted update.
	OnUpdate func(Settings)
}

// Settings is how the board should look after an update.
type Settings struct {
	Variant    wordclock.Variant
	Color      tcell.Color
	Brightness display.Brightness
}

// Server holds the board state shared by the handlers. Renders are
// serialised because the coin is not safe for concurrent use.
type Server struct {
	router   chi.Router
	log      *zap.Logger
	clock    *clock.Adjustable
	coin     wordclock.Coin
	onUpdate func(Settings)

	mu         sync.Mutex
	renderer   *wordclock.Renderer
	color      tcell.Color
	brightness display.Brightness
}

// New creates a server with routes mounted.
func New(opts Options) (*Server, error) {
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Coin == nil {
		opts.Coin = wordclock.NewRandCoin(time.Now().UnixNano())
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	r, err := wordclock.NewRenderer(opts.Variant, opts.Coin)
	if err != nil {
		return nil, err
	}

	s := &Server{
		log:        opts.Logger,
		clock:      clock.NewAdjustable(opts.Clock),
		coin:       opts.Coin,
		onUpdate:   opts.OnUpdate,
		renderer:   r,
		color:      opts.Color,
		brightness: opts.Brightness.Clamp(),
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/grid", s.handleGrid)
	r.Post("/update", s.handleUpdate)
	return r
}

// Clock returns the server's clock, shifted by any posted datetime.
func (s *Server) Clock() clock.Source {
	return s.clock
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Snapshot is one render as reported by /grid.
type Snapshot struct {
	Time       string   `json:"time"`
	Variant    string   `json:"variant"`
	Phrase     string   `json:"phrase"`
	LeadIn     bool     `json:"lead_in"`
	Color      string   `json:"color"`
	Brightness int      `json:"brightness"`
	Rows       []string `json:"rows"`
}

// Render draws the current time into g and describes it.
func (s *Server) Render(g *grid.Grid) Snapshot {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.renderer.Render(g, now.Hour(), now.Minute())
	s.log.Debug("rendered",
		zap.String("variant", p.Variant.String()),
		zap.String("phrase", p.String()),
	)
	return Snapshot{
		Time:       now.Format("15:04"),
		Variant:    p.Variant.String(),
		Phrase:     p.String(),
		LeadIn:     p.LeadIn,
		Color:      hexColor(s.color),
		Brightness: int(s.brightness),
		Rows:       g.Rows(),
	}
}

func hexColor(c tcell.Color) string {
	if c.Hex() < 0 {
		return ""
	}
	return fmt.Sprintf("#%06x", c.Hex())
}

// UpdateRequest is the body the settings form posts. Every field is
// optional; empty fields keep their current value.
type UpdateRequest struct {
	Datetime   string `json:"datetime"`
	Color      string `json:"color"`
	Language   string `json:"language"`
	Brightness string `json:"brightness"`
}

// update is a validated UpdateRequest.
type update struct {
	at         *time.Time
	color      *tcell.Color
	renderer   *wordclock.Renderer
	brightness *display.Brightness
}

func (s *Server) validate(req UpdateRequest) (update, error) {
	var u update
	if req.Datetime != "" {
		t, err := clock.ParseUnix(req.Datetime)
		if err != nil {
			return u, err
		}
		u.at = &t
	}
	if req.Color != "" {
		c, err := display.ParseColor(req.Color)
		if err != nil {
			return u, err
		}
		u.color = &c
	}
	if req.Language != "" {
		v, err := wordclock.ParseVariant(req.Language)
		if err != nil {
			return u, err
		}
		r, err := wordclock.NewRenderer(v, s.coin)
		if err != nil {
			return u, err
		}
		u.renderer = r
	}
	if req.Brightness != "" {
		b, err := display.ParseBrightness(req.Brightness)
		if err != nil {
			return u, err
		}
		u.brightness = &b
	}
	return u, nil
}

// Apply validates req and applies all of it or none of it.
func (s *Server) Apply(req UpdateRequest) error {
	u, err := s.validate(req)
	if err != nil {
		return err
	}

	if u.at != nil {
		s.clock.Set(*u.at)
	}

	s.mu.Lock()
	if u.color != nil {
		s.color = *u.color
	}
	if u.renderer != nil {
		s.renderer = u.renderer
	}
	if u.brightness != nil {
		s.brightness = *u.brightness
	}
	settings := Settings{
		Variant:    s.renderer.Variant(),
		Color:      s.color,
		Brightness: s.brightness,
	}
	s.mu.Unlock()

	s.log.Info("settings updated",
		zap.String("variant", settings.Variant.String()),
		zap.String("color", hexColor(settings.Color)),
		zap.Int("brightness", int(settings.Brightness)),
		zap.Duration("offset", s.clock.Offset()),
	)
	if s.onUpdate != nil {
		s.onUpdate(settings)
	}
	return nil
}

func isBadInput(err error) bool {
	return errors.Is(err, clock.ErrBadDatetime) ||
		errors.Is(err, display.ErrBadColor) ||
		errors.Is(err, display.ErrBadBrightness) ||
		errors.Is(err, wordclock.ErrUnknownVariant)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	var g grid.Grid
	writeJSON(w, http.StatusOK, s.Render(&g))
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.Apply(req); err != nil {
		if isBadInput(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.log.Error("applying update", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	var g grid.Grid
	writeJSON(w, http.StatusOK, s.Render(&g))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// requestLogger logs one line per request.
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
