// Package transport exposes the administrative HTTP surface.
package transport

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/importer"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"github.com/goodnatureofminers/glyphindexer/pkg/safe"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// APIKeyHeader carries the shared admin secret.
const APIKeyHeader = "x-api-key"

const (
	defaultLogsLimit = 100
	maxBodyBytes     = 1 << 16
)

// AdminConfig configures the admin surface.
type AdminConfig struct {
	APIKey         string
	AllowedOrigins []string
}

// AdminHandler serves import control, import logs and stats.
type AdminHandler struct {
	apiKey     []byte
	origins    []string
	controller ImportController
	logs       LogStore
	stats      StatsReader
	logger     *zap.Logger
}

// NewAdminHandler builds an AdminHandler. logs and stats may be nil, in which
// case their routes answer 503.
func NewAdminHandler(cfg AdminConfig, controller ImportController, logs LogStore, stats StatsReader, logger *zap.Logger) (*AdminHandler, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("admin api key is required")
	}
	if controller == nil {
		return nil, errors.New("admin import controller is required")
	}
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &AdminHandler{
		apiKey:     []byte(cfg.APIKey),
		origins:    origins,
		controller: controller,
		logs:       logs,
		stats:      stats,
		logger:     logger.Named("admin"),
	}, nil
}

// Handler returns the routed, CORS-wrapped handler.
func (h *AdminHandler) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(h.authenticate)
	admin.HandleFunc("/import", h.importState).Methods(http.MethodGet)
	admin.HandleFunc("/import", h.startImport).Methods(http.MethodPost)
	admin.HandleFunc("/import/stop", h.stopImport).Methods(http.MethodPost)
	admin.HandleFunc("/logs", h.listLogs).Methods(http.MethodGet)
	admin.HandleFunc("/logs", h.deleteLogs).Methods(http.MethodDelete)
	admin.HandleFunc("/stats", h.getStats).Methods(http.MethodGet)

	return cors.New(cors.Options{
		AllowedOrigins: h.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", APIKeyHeader},
	}).Handler(r)
}

func (h *AdminHandler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := []byte(r.Header.Get(APIKeyHeader))
		if subtle.ConstantTimeCompare(key, h.apiKey) != 1 {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *AdminHandler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type importStateResponse struct {
	LastBlockHeight int64           `json:"lastBlockHeight"`
	LastBlockHash   string          `json:"lastBlockHash"`
	LastUpdated     time.Time       `json:"lastUpdated"`
	IsImporting     bool            `json:"isImporting"`
	Run             importer.Status `json:"run"`
}

func (h *AdminHandler) importState(w http.ResponseWriter, r *http.Request) {
	state, err := h.controller.State(r.Context())
	if err != nil {
		h.logger.Error("get import state failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to get import state")
		return
	}

	hash := state.LastBlockHash
	if hash == "" {
		hash = " "
	}
	writeJSON(w, http.StatusOK, importStateResponse{
		LastBlockHeight: state.LastBlockHeight,
		LastBlockHash:   hash,
		LastUpdated:     state.LastUpdated,
		IsImporting:     state.IsImporting,
		Run:             h.controller.Status(),
	})
}

type startImportRequest struct {
	ResetToBlock    *int64 `json:"resetToBlock"`
	ResetImportFlag bool   `json:"resetImportFlag"`
}

type messageResponse struct {
	Message         string `json:"message"`
	LastBlockHeight int64  `json:"lastBlockHeight"`
}

func (h *AdminHandler) startImport(w http.ResponseWriter, r *http.Request) {
	var req startImportRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ResetToBlock != nil && *req.ResetToBlock < 0 {
		writeError(w, http.StatusBadRequest, "resetToBlock must not be negative")
		return
	}

	if req.ResetImportFlag {
		state, err := h.controller.Reset(r.Context(), importer.ResetOptions{ClearFlag: true})
		if err != nil {
			h.logger.Error("reset import flag failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to reset import flag")
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Import flag reset to false", LastBlockHeight: state.LastBlockHeight})
		return
	}

	state, err := h.controller.State(r.Context())
	if err != nil {
		h.logger.Error("get import state failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to start import")
		return
	}

	err = h.controller.Start(r.Context(), req.ResetToBlock)
	switch {
	case errors.Is(err, importer.ErrAlreadyImporting):
		writeError(w, http.StatusConflict, "Import is already running")
		return
	case err != nil:
		h.logger.Error("start import failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to start import")
		return
	}

	last := state.LastBlockHeight
	if req.ResetToBlock != nil {
		last = *req.ResetToBlock
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Import started", LastBlockHeight: last})
}

func (h *AdminHandler) stopImport(w http.ResponseWriter, _ *http.Request) {
	stopped := h.controller.Stop()
	writeJSON(w, http.StatusOK, map[string]bool{"stopped": stopped})
}

type pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Skip    int   `json:"skip"`
	HasMore bool  `json:"hasMore"`
}

type logsResponse struct {
	Logs       []model.ImportLog `json:"logs"`
	Pagination pagination        `json:"pagination"`
}

func (h *AdminHandler) listLogs(w http.ResponseWriter, r *http.Request) {
	if h.logs == nil {
		writeError(w, http.StatusServiceUnavailable, "Import log store is not configured")
		return
	}

	filter, err := parseLogFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	logs, err := h.logs.ImportLogs(r.Context(), filter)
	if err != nil {
		h.logger.Error("fetch import logs failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch logs")
		return
	}
	count, err := h.logs.CountImportLogs(r.Context(), filter)
	if err != nil {
		h.logger.Error("count import logs failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch logs")
		return
	}
	total, err := safe.Int64(count)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch logs")
		return
	}

	writeJSON(w, http.StatusOK, logsResponse{
		Logs: logs,
		Pagination: pagination{
			Total:   total,
			Limit:   filter.Limit,
			Skip:    filter.Offset,
			HasMore: int64(filter.Offset+len(logs)) < total,
		},
	})
}

type deleteLogsRequest struct {
	OlderThan string `json:"olderThan"`
}

func (h *AdminHandler) deleteLogs(w http.ResponseWriter, r *http.Request) {
	if h.logs == nil {
		writeError(w, http.StatusServiceUnavailable, "Import log store is not configured")
		return
	}

	var req deleteLogsRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil || req.OlderThan == "" {
		writeError(w, http.StatusBadRequest, "olderThan date is required")
		return
	}
	before, err := parseTime(req.OlderThan)
	if err != nil {
		writeError(w, http.StatusBadRequest, "olderThan must be an RFC 3339 date")
		return
	}

	if err = h.logs.DeleteImportLogsBefore(r.Context(), before); err != nil {
		h.logger.Error("delete import logs failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete logs")
		return
	}
	h.logger.Info("import logs deleted", zap.Time("olderThan", before))
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Successfully deleted logs older than " + before.UTC().Format(time.RFC3339),
	})
}

func (h *AdminHandler) getStats(w http.ResponseWriter, r *http.Request) {
	if h.stats == nil {
		writeError(w, http.StatusServiceUnavailable, "Stats are not configured")
		return
	}
	stats, err := h.stats.Stats(r.Context())
	if err != nil {
		h.logger.Error("load stats failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to load stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func parseLogFilter(r *http.Request) (model.ImportLogFilter, error) {
	q := r.URL.Query()
	filter := model.ImportLogFilter{Limit: defaultLogsLimit}

	if level := strings.ToLower(q.Get("level")); level != "" {
		switch level {
		case model.LogLevelError, model.LogLevelWarn, model.LogLevelInfo, model.LogLevelDebug:
			filter.Level = level
		default:
			return filter, errors.New("level must be one of error, warn, info, debug")
		}
	}
	if v := q.Get("blockHeight"); v != "" {
		height, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, errors.New("blockHeight must be an integer")
		}
		filter.BlockHeight = &height
	}
	if v := q.Get("startDate"); v != "" {
		since, err := parseTime(v)
		if err != nil {
			return filter, errors.New("startDate must be an RFC 3339 date")
		}
		filter.Since = &since
	}
	if v := q.Get("endDate"); v != "" {
		until, err := parseTime(v)
		if err != nil {
			return filter, errors.New("endDate must be an RFC 3339 date")
		}
		filter.Until = &until
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			return filter, errors.New("limit must be a positive integer")
		}
		filter.Limit = limit
	}
	skip := q.Get("skip")
	if skip == "" {
		skip = q.Get("offset")
	}
	if skip != "" {
		offset, err := strconv.Atoi(skip)
		if err != nil || offset < 0 {
			return filter, errors.New("skip must be a non-negative integer")
		}
		filter.Offset = offset
	}
	return filter, nil
}

func parseTime(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, v)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
