package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/kasuboski/vfp/pkg/logger"
	"github.com/kasuboski/vfp/pkg/pagination"
	"github.com/kasuboski/vfp/pkg/parser"
	"github.com/kasuboski/vfp/pkg/storage"
	"github.com/kasuboski/vfp/pkg/storage/sqlite/schema/gen/model"
	"go.uber.org/zap"
)

const (
	// maxBatch caps the number of names in a single batch request
	maxBatch = 1000
	// maxBatchBytes caps the size of a batch request body
	maxBatchBytes = 1 << 20
)

type ParseBatchRequest struct {
	Names []string `json:"names"`
}

type HistoryEntry struct {
	ID        int64           `json:"id"`
	Path      *string         `json:"path,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Metadata  parser.Metadata `json:"metadata"`
}

type HistoryResponse struct {
	Results []HistoryEntry  `json:"results"`
	Meta    pagination.Meta `json:"meta"`
}

// ParseOne parses the filename given in the name query parameter
func (s Server) ParseOne() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		name := r.URL.Query().Get("name")
		if name == "" {
			writeErrorResponse(w, http.StatusBadRequest, errors.New("name query parameter is required"))
			return
		}

		md := s.parse(r.Context(), name)
		err := writeResponse(w, http.StatusOK, GenericResponse{Response: md})
		if err != nil {
			log.Errorw("failed to write response", zap.Error(err))
		}
	}
}

// ParseBatch parses every filename in the request body, results are returned in request order
func (s Server) ParseBatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBatchBytes))
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeErrorResponse(w, http.StatusRequestEntityTooLarge, fmt.Errorf("request body too large: at most %d bytes", tooLarge.Limit))
			return
		}
		if err != nil {
			log.Debugw("invalid request body", zap.Error(err))
			writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid request body"))
			return
		}

		var request ParseBatchRequest
		err = json.Unmarshal(b, &request)
		if err != nil {
			log.Debugw("invalid request body", zap.ByteString("body", b))
			writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid request body"))
			return
		}

		if len(request.Names) > maxBatch {
			writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("too many names: at most %d per request", maxBatch))
			return
		}

		results := make([]parser.Metadata, len(request.Names))
		for i, name := range request.Names {
			results[i] = s.parse(r.Context(), name)
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: results})
		if err != nil {
			log.Errorw("failed to write response", zap.Error(err))
		}
	}
}

// ListHistory lists stored parse results newest first
func (s Server) ListHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		if s.store == nil {
			writeErrorResponse(w, http.StatusNotFound, errNoStorage)
			return
		}

		params, err := pagination.FromQuery(r.URL.Query())
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		total, err := s.store.CountParseResults(r.Context())
		if err != nil {
			log.Errorw("failed to count parse results", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to list history"))
			return
		}

		offset, limit := params.CalculateOffsetLimit()
		rows, err := s.store.ListParseResults(r.Context(), offset, limit)
		if err != nil {
			log.Errorw("failed to list parse results", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to list history"))
			return
		}

		resp := HistoryResponse{
			Results: make([]HistoryEntry, 0, len(rows)),
			Meta:    params.BuildMeta(total),
		}
		for _, row := range rows {
			entry, err := toHistoryEntry(row)
			if err != nil {
				log.Warnw("skipping unreadable parse result", zap.Int32("id", row.ID), zap.Error(err))
				continue
			}
			resp.Results = append(resp.Results, entry)
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: resp})
		if err != nil {
			log.Errorw("failed to write response", zap.Error(err))
		}
	}
}

// GetHistory returns a single stored parse result
func (s Server) GetHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		if s.store == nil {
			writeErrorResponse(w, http.StatusNotFound, errNoStorage)
			return
		}

		id, err := historyID(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		row, err := s.store.GetParseResult(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			writeErrorResponse(w, http.StatusNotFound, err)
			return
		}
		if err != nil {
			log.Errorw("failed to get parse result", zap.Int64("id", id), zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to get history"))
			return
		}

		entry, err := toHistoryEntry(row)
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: entry})
		if err != nil {
			log.Errorw("failed to write response", zap.Error(err))
		}
	}
}

// DeleteHistory removes a stored parse result
func (s Server) DeleteHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		if s.store == nil {
			writeErrorResponse(w, http.StatusNotFound, errNoStorage)
			return
		}

		id, err := historyID(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		err = s.store.DeleteParseResult(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			writeErrorResponse(w, http.StatusNotFound, err)
			return
		}
		if err != nil {
			log.Errorw("failed to delete parse result", zap.Int64("id", id), zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to delete history"))
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: "deleted"})
	}
}

// parse memoises parse results per filename and records them when storage is configured
func (s Server) parse(ctx context.Context, name string) parser.Metadata {
	md := s.parses.GetOrSet(name, func() parser.Metadata {
		return s.table.Parse(name)
	})

	if s.store != nil {
		if _, err := s.store.CreateParseResult(ctx, storage.FromMetadata("", md)); err != nil {
			logger.FromCtx(ctx).Warnw("failed to record parse result", zap.String("name", name), zap.Error(err))
		}
	}

	return md
}

func historyID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id: %w", err)
	}
	return id, nil
}

func toHistoryEntry(row *model.ParseResult) (HistoryEntry, error) {
	md, err := storage.ToMetadata(*row)
	if err != nil {
		return HistoryEntry{}, err
	}
	return HistoryEntry{
		ID:        int64(row.ID),
		Path:      row.Path,
		CreatedAt: row.CreatedAt,
		Metadata:  md,
	}, nil
}
