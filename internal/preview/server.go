package preview

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"os/exec"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/ziadkadry99/invitekit/internal/archive"
	"github.com/ziadkadry99/invitekit/internal/assets"
	"github.com/ziadkadry99/invitekit/internal/history"
	"github.com/ziadkadry99/invitekit/internal/invitation"
	"github.com/ziadkadry99/invitekit/internal/render"
)

// Config holds preview server configuration.
type Config struct {
	Port        int
	AllowAll    bool   // allow all CORS origins
	Placeholder string // image used for media the preview cannot show

	// History, when set, records every export and serves /api/history.
	History *history.Store
}

// Server serves the live preview: a shell page framing the standalone
// document, a reload socket, and export endpoints for the current snapshot.
type Server struct {
	cfg      Config
	logger   zerolog.Logger
	hub      *Hub
	renderer *Renderer
	packager *archive.Packager
	markdown goldmark.Markdown

	mu      sync.RWMutex
	current invitation.Config

	router     chi.Router
	httpServer *http.Server
}

// New creates a preview server showing inv. The hub is mounted as the
// render surface, so inv is rendered right away.
func New(cfg Config, inv invitation.Config, packager *archive.Packager, logger zerolog.Logger) (*Server, error) {
	if cfg.Placeholder == "" {
		cfg.Placeholder = assets.DefaultPlaceholder
	}
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		hub:      NewHub(logger),
		renderer: NewRenderer(cfg.Placeholder, logger),
		packager: packager,
		markdown: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
	s.renderer.Mount(s.hub)
	s.router = s.buildRouter()
	if err := s.Update(inv); err != nil {
		return nil, err
	}
	return s, nil
}

// Update makes inv the current snapshot and re-renders the preview.
func (s *Server) Update(inv invitation.Config) error {
	inv = inv.Clone()
	s.mu.Lock()
	s.current = inv
	s.mu.Unlock()
	_, err := s.renderer.Render(inv)
	return err
}

// Snapshot returns a copy of the current configuration.
func (s *Server) Snapshot() invitation.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Hub returns the socket hub backing the preview surface.
func (s *Server) Hub() *Hub { return s.hub }

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition", "X-Invitekit-Omissions"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// The socket outlives any request timeout.
	r.Get("/ws", s.hub.ServeWS)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		r.Get("/", s.handleShell)
		r.Get("/frame", s.handleFrame)
		r.Get("/export", s.handleExport)
		r.Get("/readme", s.handleReadme)
		r.Get("/api/warnings", s.handleWarnings)
		r.Get("/api/manifest", s.handleManifest)
		if s.cfg.History != nil {
			history.RegisterRoutes(r, s.cfg.History)
		}
	})
	return r
}

func (s *Server) handleShell(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(shellPage()))
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	doc, version := s.hub.Document()
	if version == 0 {
		http.Error(w, "preview not rendered yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Preview-Version", strconv.Itoa(version))
	w.Write([]byte(doc))
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	cfg := s.Snapshot()
	report, err := s.packager.Package(r.Context(), &buf, cfg)
	if err != nil {
		s.logger.Error().Err(err).Msg("preview export failed")
		http.Error(w, "export failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if s.cfg.History != nil {
		if _, err := s.cfg.History.Record(r.Context(), history.FromReport(history.SourcePreview, "", cfg, report)); err != nil {
			s.logger.Warn().Err(err).Msg("recording export")
		}
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": report.Name}))
	w.Header().Set("X-Invitekit-Omissions", strconv.Itoa(len(report.Omissions)))
	w.Write(buf.Bytes())
}

func (s *Server) handleReadme(w http.ResponseWriter, r *http.Request) {
	cfg := s.Snapshot()
	var body bytes.Buffer
	if err := s.markdown.Convert([]byte(render.Readme(cfg, nil)), &body); err != nil {
		http.Error(w, "rendering readme: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(readmePage(cfg, body.String())))
}

type warningsResponse struct {
	Warnings []string `json:"warnings"`
}

func (s *Server) handleWarnings(w http.ResponseWriter, r *http.Request) {
	warnings := s.Snapshot().Warnings()
	if warnings == nil {
		warnings = []string{}
	}
	writeJSON(w, http.StatusOK, warningsResponse{Warnings: warnings})
}

func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	cfg := s.Snapshot()
	writeJSON(w, http.StatusOK, render.Render(cfg, assets.Plan(cfg).Refs, nil).Manifest())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Addr returns the loopback address the server listens on.
func (s *Server) Addr() string {
	return fmt.Sprintf("127.0.0.1:%d", s.cfg.Port)
}

// Start begins listening on the configured port.
func (s *Server) Start(open bool) error {
	addr := s.Addr()
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if open {
		go openBrowser("http://" + addr)
	}
	s.logger.Info().Str("addr", addr).Msg("preview server listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
