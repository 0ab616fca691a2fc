package stub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/killallgit/storychat/pkg/logger"
	"github.com/killallgit/storychat/pkg/storyapi"
)

const (
	imageSize = 64

	// defaultImageLimit bounds how many generated images are kept
	defaultImageLimit = 256
)

// Server is a development stand-in for the story backend. It answers the
// chat contract with canned stories and serves generated images.
type Server struct {
	router chi.Router

	mu     sync.RWMutex
	images map[string]story
	order  []string // image ids, oldest first
	limit  int
}

func NewServer() *Server {
	s := &Server{
		images: make(map[string]story),
		limit:  defaultImageLimit,
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("StoryStub OK"))
	})
	s.RegisterRoutes(r)

	s.router = r
	return s
}

// RegisterRoutes attaches the chat and image endpoints to the router.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Post("/api/chat", s.handleChat)
	r.Get("/images/{id}.png", s.handleImage)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.WithComponent("stub").Info("Story stub starting on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not start stub server: %w", err)
	}
	return nil
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	log := logger.WithComponent("stub")

	var req storyapi.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	st, relevant := match(req.Message)
	text := st.text
	if !relevant {
		st = confused
		text = UnrelatedReply
	}

	id := uuid.New().String()
	s.remember(id, st)

	imageURL := fmt.Sprintf("%s/images/%s.png", baseURL(r), id)
	log.Debug("Answering %q (relevant: %t, image: %s)", req.Message, relevant, id)

	writeJSON(w, http.StatusOK, storyapi.ChatResponse{
		Message:  &text,
		ImageURL: imageURL,
		Relevant: &relevant,
	})
}

// remember stores the palette for image id, evicting the oldest image once
// the limit is reached.
func (s *Server) remember(id string, st story) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.images[id] = st
	s.order = append(s.order, id)
	for len(s.order) > s.limit {
		delete(s.images, s.order[0])
		s.order = s.order[1:]
	}
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.RLock()
	st, ok := s.images[id]
	s.mu.RUnlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Image not found")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, gradient(st.from, st.to)); err != nil {
		logger.WithComponent("stub").Error("Failed to encode image %s: %v", id, err)
	}
}

// gradient renders a diagonal blend between two colours
func gradient(from, to color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, imageSize, imageSize))
	for y := 0; y < imageSize; y++ {
		for x := 0; x < imageSize; x++ {
			t := float64(x+y) / float64(2*(imageSize-1))
			img.Set(x, y, color.RGBA{
				R: blend(from.R, to.R, t),
				G: blend(from.G, to.G, t),
				B: blend(from.B, to.B, t),
				A: 0xff,
			})
		}
	}
	return img
}

func blend(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
