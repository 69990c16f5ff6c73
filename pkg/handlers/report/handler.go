package report

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/impact-atlas/pkg/adapters"
	"github.com/de-tools/impact-atlas/pkg/models/api"
	"github.com/de-tools/impact-atlas/pkg/models/domain"
	"github.com/de-tools/impact-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/impact-atlas/pkg/services/report"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const defaultMetric = domain.MetricLeads

type Handler struct {
	reports report.Service
}

func NewHandler(reports report.Service) *Handler {
	return &Handler{reports: reports}
}

// Routes mounts the report endpoints on r
func (h *Handler) Routes(r chi.Router) {
	r.Get("/reports", h.ListReports)
	r.Post("/reports", h.SaveReport)
	r.Get("/reports/latest", h.GetLatestReport)
	r.Get("/reports/{id}", h.GetReport)
	r.Delete("/reports/{id}", h.DeleteReport)
	r.Get("/reports/{id}/next", h.GetNextReportTemplate)
	r.Get("/reports/{id}/impact", h.GetImpact)
	r.Get("/reports/{id}/impact.txt", h.GetImpactText)
	r.Get("/reports/{id}/kpis", h.GetKPIs)
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reports, err := h.reports.List(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to list reports")
		writeError(w, r, http.StatusInternalServerError, "failed to list reports")
		return
	}

	response := make([]api.MonthlyReport, 0, len(reports))
	for _, rep := range reports {
		response = append(response, adapters.MapReportDomainToApi(rep))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) SaveReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload api.MonthlyReport
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid report payload: "+err.Error())
		return
	}

	saved, created, err := h.reports.Save(ctx, adapters.MapReportApiToDomain(payload))
	if err != nil {
		h.handleError(w, r, err, "failed to save report")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, r, status, adapters.MapReportDomainToApi(*saved))
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rep, err := h.reports.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err, "failed to load report")
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapReportDomainToApi(*rep))
}

func (h *Handler) GetLatestReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.reports.Latest(r.Context())
	if err != nil {
		h.handleError(w, r, err, "failed to load latest report")
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapReportDomainToApi(*rep))
}

func (h *Handler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.reports.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err, "failed to delete report")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetNextReportTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	next, err := h.reports.CopyForNextMonth(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err, "failed to prepare next report")
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapReportDomainToApi(*next))
}

func (h *Handler) GetImpact(w http.ResponseWriter, r *http.Request) {
	analysis, ok := h.analyze(w, r)
	if !ok {
		return
	}

	response := api.ImpactResponse{}
	if analysis != nil {
		mapped := adapters.MapImpactAnalysisDomainToApi(*analysis)
		response.Available = true
		response.Analysis = &mapped
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) GetImpactText(w http.ResponseWriter, r *http.Request) {
	analysis, ok := h.analyze(w, r)
	if !ok {
		return
	}
	if analysis == nil {
		writeError(w, r, http.StatusNotFound, "no previous report to compare against")
		return
	}

	text, err := export.Serialize(analysis)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to render impact analysis")
		writeError(w, r, http.StatusInternalServerError, "failed to render impact analysis")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(text)); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to write impact analysis")
	}
}

// analyze resolves the metric query parameter and runs the analysis.
// Analysis failures other than bad input are logged and reported as unavailable.
func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) (*domain.ImpactAnalysis, bool) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	metric := defaultMetric
	if raw := r.URL.Query().Get("metric"); raw != "" {
		parsed, err := domain.ParseMetric(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return nil, false
		}
		metric = parsed
	}

	analysis, err := h.reports.Analyze(ctx, id, metric)
	switch {
	case err == nil:
		return analysis, true
	case errors.Is(err, report.ErrReportNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
		return nil, false
	default:
		logger.Error().
			Err(err).
			Str("report", id).
			Str("metric", metric.String()).
			Msg("impact analysis failed, reporting as unavailable")
		return nil, true
	}
}

func (h *Handler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	summary, err := h.reports.Insights(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err, "failed to compute kpis")
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapInsightSummaryDomainToApi(*summary))
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	var validationErr *report.ValidationError
	var metricErr *domain.InvalidMetricError

	switch {
	case errors.Is(err, report.ErrReportNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.As(err, &validationErr), errors.As(err, &metricErr):
		writeError(w, r, http.StatusBadRequest, err.Error())
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg(msg)
		writeError(w, r, http.StatusInternalServerError, msg)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, api.Error{Error: msg})
}
