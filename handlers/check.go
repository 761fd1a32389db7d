package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/varaeff/wordcheck.api/enums"
	"github.com/varaeff/wordcheck.api/exporters"
	"github.com/varaeff/wordcheck.api/matchers"
	"github.com/varaeff/wordcheck.api/metrics"
	"github.com/varaeff/wordcheck.api/models"
)

type LanguageDetector interface {
	Detect(text string) string
}

type CheckHandler struct {
	logger       *slog.Logger
	detector     LanguageDetector
	exporter     exporters.Exporter
	metrics      *metrics.Metrics
	defaultMode  enums.Mode
	maxBodyBytes int64
}

// NewCheckHandler creates the check endpoints. detector and exporter may be nil to
// disable language detection and clipboard export.
func NewCheckHandler(logger *slog.Logger, detector LanguageDetector, exporter exporters.Exporter, m *metrics.Metrics, defaultMode enums.Mode, maxBodyBytes int64) *CheckHandler {
	return &CheckHandler{
		logger:       logger,
		detector:     detector,
		exporter:     exporter,
		metrics:      m,
		defaultMode:  defaultMode,
		maxBodyBytes: maxBodyBytes,
	}
}

func (h *CheckHandler) Check(w http.ResponseWriter, r *http.Request) Result {
	var req models.CheckRequest
	if res, ok := h.decode(w, r, &req); !ok {
		return res
	}

	mode, err := h.parseMode(req.Mode)
	if err != nil {
		return BadRequest("Invalid mode.")
	}
	target, boundary, res, ok := parseMatchOptions(req.Target, req.Boundary)
	if !ok {
		return res
	}
	filter, err := enums.ParseFilter(req.Filter)
	if err != nil {
		return BadRequest("Invalid filter.")
	}

	ts := time.Now()
	n, c := matchers.Check(req.Text, req.WordList, mode, target, boundary)
	h.metrics.ObserveCheck(mode, c, time.Since(ts))

	found, notFound, _ := matchers.Partition(c)
	resp := models.CheckResponse{
		CheckID:        uuid.New(),
		NormalizedText: n.Text,
		DisplayText:    n.Display,
		Words:          c,
		Found:          found,
		NotFound:       notFound,
		Filtered:       matchers.Filter(c, filter),
	}
	if h.detector != nil {
		resp.Language = h.detector.Detect(n.Text)
	}

	h.logger.Debug("check completed",
		"check_id", resp.CheckID,
		"mode", mode,
		"target", target,
		"words", len(c),
		"found", len(found),
		"language", resp.Language,
	)

	return Ok(resp)
}

// CheckWord re-checks a single word, typically an edited form of a word that was not found.
func (h *CheckHandler) CheckWord(w http.ResponseWriter, r *http.Request) Result {
	var req models.WordCheckRequest
	if res, ok := h.decode(w, r, &req); !ok {
		return res
	}

	target, boundary, res, ok := parseMatchOptions(req.Target, req.Boundary)
	if !ok {
		return res
	}

	word := strings.TrimSpace(req.Word)
	if word == "" {
		return BadRequest("Word is required.")
	}

	text := matchers.Normalize(req.Text, "", enums.ModeWordList).Target(target)
	p := matchers.BuildMatchPattern(word, matchers.TargetOptions(target, boundary)...)
	positions := p.FindAllIndex(text)
	if positions == nil {
		positions = [][]int{}
	}

	return Ok(models.WordCheckResponse{
		Word:      p.Word(),
		Found:     len(positions) > 0,
		Count:     len(positions),
		Positions: positions,
	})
}

// Export collects found or not-found words and optionally copies them to the clipboard.
func (h *CheckHandler) Export(w http.ResponseWriter, r *http.Request) Result {
	var req models.ExportRequest
	if res, ok := h.decode(w, r, &req); !ok {
		return res
	}

	mode, err := h.parseMode(req.Mode)
	if err != nil {
		return BadRequest("Invalid mode.")
	}
	target, boundary, res, ok := parseMatchOptions(req.Target, req.Boundary)
	if !ok {
		return res
	}

	n := matchers.Normalize(req.Text, req.WordList, mode)
	words := matchers.CollectByStatus(n.Words, n.Target(target), req.Found, matchers.TargetOptions(target, boundary)...)

	out := exporters.Run(r.Context(), h.exporter, words, req.Copy)
	h.metrics.ObserveExport(out.Status)

	resp := models.ExportResponse{
		Status:  string(out.Status),
		Count:   len(out.Words),
		Words:   out.Words,
		Content: out.Content,
	}
	if out.Err != nil {
		h.logger.Warn("export failed", "error", out.Err, "count", len(out.Words))
		resp.Error = out.Err.Error()
	}

	return Ok(resp)
}

func (h *CheckHandler) decode(w http.ResponseWriter, r *http.Request, v interface{}) (Result, bool) {
	body := r.Body
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	if err := json.NewDecoder(body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return TooLarge("Request body too large."), false
		}
		return BadRequest("Invalid request."), false
	}

	return Result{}, true
}

func (h *CheckHandler) parseMode(s string) (enums.Mode, error) {
	if s == "" {
		return h.defaultMode, nil
	}
	return enums.ParseMode(s)
}

func parseMatchOptions(target, boundary string) (enums.Target, enums.Boundary, Result, bool) {
	t, err := enums.ParseTarget(target)
	if err != nil {
		return "", "", BadRequest("Invalid target."), false
	}
	b, err := enums.ParseBoundary(boundary)
	if err != nil {
		return "", "", BadRequest("Invalid boundary."), false
	}
	return t, b, Result{}, true
}
