package web

import (
	"net/http"
	"time"

	"github.com/cube-solver/kociemba/internal/twophase"
	"github.com/cube-solver/kociemba/internal/web/history"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Server is the HTTP frontend for the solver: a handful of JSON endpoints
// plus a static index page. It deliberately does not expose a way to run
// arbitrary commands on the host.
type Server struct {
	router  *mux.Router
	table   *twophase.DataTable
	history *history.Store
	log     *logrus.Logger
}

// NewServer builds a Server with its own in-memory move/pruning tables and
// solve-history database at historyPath (use ":memory:" for an ephemeral log).
func NewServer(historyPath string, log *logrus.Logger) (*Server, error) {
	if log == nil {
		log = logrus.New()
	}

	start := time.Now()
	table := twophase.NewDataTable()
	log.WithField("elapsed", time.Since(start)).Info("web: move/pruning tables built")

	store, err := history.Open(historyPath)
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:  mux.NewRouter(),
		table:   table,
		history: store,
		log:     log,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods(http.MethodPost)
	api.HandleFunc("/scramble", s.handleScramble).Methods(http.MethodPost)
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/history", s.handleHistory).Methods(http.MethodGet)

	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
}

type requestIDKey struct{}

// requestIDMiddleware stamps every request with a uuid, logged alongside the
// method and path so a client-reported issue can be traced back to a line in
// the server log.
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		s.log.WithFields(logrus.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
		}).Debug("request")
		next.ServeHTTP(w, r)
	})
}

// Start blocks serving on addr.
func (s *Server) Start(addr string) error {
	s.log.WithField("addr", addr).Info("web: listening")
	return http.ListenAndServe(addr, s.router)
}

// Close releases the server's solve-history database handle.
func (s *Server) Close() error {
	return s.history.Close()
}
