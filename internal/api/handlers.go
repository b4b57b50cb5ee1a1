package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/livp123/urlp/internal/format"
	"github.com/livp123/urlp/internal/utils/logger"
	"github.com/livp123/urlp/internal/version"
)

// maxBatchSize bounds one parse request.
// maxBatchSize 限制单次解析请求的大小。
const maxBatchSize = 10000

type parseRequest struct {
	URLs []string `json:"urls"`
}

type parseResponse struct {
	URLs   []format.Record `json:"urls"`
	Parsed int             `json:"parsed"`
	Failed int             `json:"failed"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// handleHealth reports liveness and the running version.
// handleHealth 报告存活状态和运行版本。
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

// handleParse accepts a JSON batch of URLs and returns the parsed records.
// Malformed URLs are skipped and counted; they never fail the whole batch.
// handleParse 接收 JSON 批量 URL 并返回解析结果。
// 畸形 URL 被跳过并计数，不会使整个批次失败。
func (s *Server) handleParse(baseCtx context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
			return
		}

		var req parseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
			return
		}
		if len(req.URLs) == 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "no urls provided"})
			return
		}
		if len(req.URLs) > maxBatchSize {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "too many urls in one request"})
			return
		}

		records, err := s.pipe.Process(r.Context(), req.URLs)
		if err != nil {
			logger.Get(baseCtx).Warnf("[API] Parse request failed: %v", err)
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, parseResponse{
			URLs:   records,
			Parsed: len(records),
			Failed: len(req.URLs) - len(records),
		})
	}
}
