package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/AbhishekDubey013/zkastro-proof/store"
	"github.com/AbhishekDubey013/zkastro-proof/zkproof"
)

// Server accepts natal chart submissions, verifies the commitment proof
// and serves the public view of accepted charts.
type Server struct {
	verifier *zkproof.Verifier
	charts   store.Store
	verify   *semaphore.Weighted
	log      zerolog.Logger
}

// New wires a verifier and a chart store into a server. The hash primitive
// behind the verifier must already be initialized; callers that cannot
// build one must refuse to start rather than serve an unverified path.
func New(v *zkproof.Verifier, charts store.Store, log zerolog.Logger) *Server {
	return &Server{
		verifier: v,
		charts:   charts,
		verify:   semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0))),
		log:      log,
	}
}

// Handler returns the routed handler with request logging attached.
func (s *Server) Handler() http.Handler {
	router := http.NewServeMux()
	router.HandleFunc("GET /healthz", s.healthz)
	router.HandleFunc("POST /charts", s.handleSubmit)
	router.HandleFunc("GET /charts/{id}", s.handleGet)
	return LoggingMiddleware(s.log, router)
}

// Start listens on the given port until the listener fails.
func (s *Server) Start(port string) error {
	s.log.Info().Str("port", port).Msg("starting chart server")
	return http.ListenAndServe(":"+port, s.Handler())
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	if s.verifier == nil || s.charts == nil {
		ReturnErrorJSON(w, "not ready", http.StatusInternalServerError)
		return
	}
	ReturnJSON(w, "OK", http.StatusOK)
}

type submitResponse struct {
	ChartID   string                  `json:"chart_id"`
	Positions zkproof.PublicPositions `json:"positions"`
}

type chartResponse struct {
	ChartID   string                  `json:"chart_id"`
	Positions zkproof.PublicPositions `json:"positions"`
	Verified  bool                    `json:"verified"`
	CreatedAt time.Time               `json:"created_at"`
}

// handleSubmit accepts a proof artifact with its public positions, verifies
// it and persists a chart record on success. Every verification failure,
// malformed or mismatched, maps to the same 400 response so the endpoint
// cannot be used as an oracle for forging proofs.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var sub zkproof.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		ReturnErrorJSON(w, "proof verification failed", http.StatusBadRequest)
		return
	}

	// Recomputing digests is CPU-bound; cap how many submissions hash at
	// once so a burst cannot starve the rest of the process.
	if err := s.verify.Acquire(r.Context(), 1); err != nil {
		ReturnErrorJSON(w, "request canceled", http.StatusServiceUnavailable)
		return
	}
	err := s.verifier.Verify(sub)
	s.verify.Release(1)
	if err != nil {
		s.log.Debug().Err(err).Msg("submission rejected")
		ReturnErrorJSON(w, "proof verification failed", http.StatusBadRequest)
		return
	}

	rec := store.ChartRecord{
		ID:         uuid.NewString(),
		Commitment: sub.Commitment,
		Proof:      sub.Proof,
		Nonce:      sub.Nonce,
		Positions:  sub.Positions,
		Verified:   true,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.charts.Create(r.Context(), rec); err != nil {
		if errors.Is(err, store.ErrDuplicateCommitment) {
			ReturnErrorJSON(w, "duplicate commitment", http.StatusConflict)
			return
		}
		s.log.Error().Err(err).Str("chart_id", rec.ID).Msg("persisting chart record")
		ReturnErrorJSON(w, "storing chart", http.StatusInternalServerError)
		return
	}

	ReturnJSON(w, submitResponse{ChartID: rec.ID, Positions: rec.Positions}, http.StatusOK)
}

// handleGet serves the public view of a stored chart. Commitment, proof
// and nonce stay server-side; downstream consumers only read positions.
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := s.charts.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ReturnErrorJSON(w, "chart not found", http.StatusNotFound)
			return
		}
		s.log.Error().Err(err).Msg("reading chart record")
		ReturnErrorJSON(w, "reading chart", http.StatusInternalServerError)
		return
	}
	ReturnJSON(w, chartResponse{
		ChartID:   rec.ID,
		Positions: rec.Positions,
		Verified:  rec.Verified,
		CreatedAt: rec.CreatedAt,
	}, http.StatusOK)
}
