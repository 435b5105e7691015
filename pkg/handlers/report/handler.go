package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/time-atlas/pkg/adapters"
	"github.com/de-tools/time-atlas/pkg/models/api"
	"github.com/de-tools/time-atlas/pkg/models/domain"
	reportsvc "github.com/de-tools/time-atlas/pkg/services/report"
	"github.com/de-tools/time-atlas/pkg/services/timewindow"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Runner is the slice of the report runner the web surface depends on.
type Runner interface {
	Windows() []string
	Run(ctx context.Context, window string) (*domain.Report, []domain.Entry, error)
	RunDate(ctx context.Context, value string) (*domain.Report, []domain.Entry, error)
	ListActivities(ctx context.Context) ([]domain.Activity, error)
}

type Handler struct {
	runner Runner
}

func NewHandler(runner Runner) *Handler {
	return &Handler{runner: runner}
}

func (h *Handler) ListWindows(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	response := api.WindowList{Windows: h.runner.Windows()}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode windows")
	}
}

// GetReport runs the report for a named window, e.g. /reports/last-week.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	window := chi.URLParam(r, "window")

	rep, _, err := h.runner.Run(ctx, window)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := json.NewEncoder(w).Encode(adapters.MapReportDomainToApi(rep)); err != nil {
		logger.Error().
			Err(err).
			Str("window", window).
			Msg("failed to encode report")
	}
}

// GetReportByDate runs the report for one explicit calendar date, passed as
// /reports?date=2024-1-9.
func (h *Handler) GetReportByDate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	date := r.URL.Query().Get("date")

	if date == "" {
		http.Error(w, "missing required query parameter: date", http.StatusBadRequest)
		return
	}

	rep, _, err := h.runner.RunDate(ctx, date)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := json.NewEncoder(w).Encode(adapters.MapReportDomainToApi(rep)); err != nil {
		logger.Error().
			Err(err).
			Str("date", date).
			Msg("failed to encode report")
	}
}

func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	activities, err := h.runner.ListActivities(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response := make([]api.Activity, 0, len(activities))
	for _, activity := range activities {
		response = append(response, adapters.MapActivityDomainToApi(activity))
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode activities")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	switch {
	case errors.Is(err, timewindow.ErrInvalidDateFormat):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, reportsvc.ErrUnknownWindow):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		logger.Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("report request failed")
		http.Error(w, "failed to build report", http.StatusBadGateway)
	}
}
