// Package handler exposes the projection engine over fasthttp.
package handler

import (
	"bytes"
	"errors"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"opportunity-engine/internal/config"
	"opportunity-engine/internal/engine"
	"opportunity-engine/internal/metrics"
	"opportunity-engine/internal/model"
	"opportunity-engine/internal/rates"
	"opportunity-engine/internal/report"
	"opportunity-engine/internal/share"
)

const calculationIDKey = "calculation_id"

type Handler struct {
	cfg      *config.Config
	resolver *rates.Resolver
	log      *zap.Logger
	metrics  fasthttp.RequestHandler
}

func New(cfg *config.Config, resolver *rates.Resolver, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		cfg:      cfg,
		resolver: resolver,
		log:      log,
		metrics:  fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()),
	}
}

// Handle is the fasthttp entry point. It routes by path and records one log
// line and one counter sample per request.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	route := string(ctx.Path())

	switch route {
	case "/v1/calculate":
		h.post(ctx, h.handleCalculate)
	case "/v1/share":
		switch {
		case ctx.IsGet():
			h.handleShareGet(ctx)
		case ctx.IsPost():
			h.handleShareCreate(ctx)
		default:
			writeError(ctx, fasthttp.StatusBadRequest, "Method not allowed")
		}
	case "/v1/quick":
		h.post(ctx, h.handleQuick)
	case "/v1/export/text":
		h.post(ctx, h.handleExportText)
	case "/v1/export/csv":
		h.post(ctx, h.handleExportCSV)
	case "/v1/export/pdf":
		h.post(ctx, h.handleExportPDF)
	case "/v1/rates":
		h.get(ctx, h.handleRates)
	case "/healthz":
		h.get(ctx, func(ctx *fasthttp.RequestCtx) {
			writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
		})
	case "/metrics":
		h.get(ctx, h.metrics)
	default:
		route = "unknown"
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}

	status := ctx.Response.StatusCode()
	metrics.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()

	logFields := []zap.Field{
		zap.String("method", string(ctx.Method())),
		zap.String("route", route),
		zap.Int("status", status),
		zap.Duration("duration", time.Since(start)),
	}
	if id, ok := ctx.UserValue(calculationIDKey).(string); ok {
		logFields = append(logFields, zap.String("calculation_id", id))
	}
	h.log.Info("request", logFields...)
}

func (h *Handler) post(ctx *fasthttp.RequestCtx, next fasthttp.RequestHandler) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusBadRequest, "Method not allowed")
		return
	}
	next(ctx)
}

func (h *Handler) get(ctx *fasthttp.RequestCtx, next fasthttp.RequestHandler) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusBadRequest, "Method not allowed")
		return
	}
	next(ctx)
}

func (h *Handler) handleCalculate(ctx *fasthttp.RequestCtx) {
	req, ok := h.decodeRequest(ctx)
	if !ok {
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, h.process(ctx, req))
}

func (h *Handler) handleShareGet(ctx *fasthttp.RequestCtx) {
	req, err := share.Decode(string(ctx.QueryArgs().QueryString()))
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid share query: "+err.Error())
		return
	}
	if !h.prepare(ctx, req) {
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, h.process(ctx, req))
}

func (h *Handler) handleShareCreate(ctx *fasthttp.RequestCtx) {
	req, ok := h.decodeRequest(ctx)
	if !ok {
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, model.ShareResponse{Query: share.Encode(req)})
}

func (h *Handler) handleQuick(ctx *fasthttp.RequestCtx) {
	body := ctx.PostBody()
	if len(bytes.TrimSpace(body)) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "Request body is required")
		return
	}
	var req model.QuickRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validateBody(quickSchema, body); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, engine.QuickCompare(req.OptionA, req.OptionB))
}

func (h *Handler) handleExportText(ctx *fasthttp.RequestCtx) {
	req, ok := h.decodeRequest(ctx)
	if !ok {
		return
	}
	resp := h.process(ctx, req)
	if resp.CalculationResult.Comparison == nil {
		writeJSON(ctx, fasthttp.StatusUnprocessableEntity, resp)
		return
	}
	ctx.SetContentType("text/plain; charset=utf-8")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBodyString(report.Text(resp))
}

func (h *Handler) handleExportCSV(ctx *fasthttp.RequestCtx) {
	side := string(ctx.QueryArgs().Peek("option"))
	if side == "" {
		side = model.SideA
	}
	if side != model.SideA && side != model.SideB {
		writeError(ctx, fasthttp.StatusBadRequest, "option must be \"a\" or \"b\"")
		return
	}

	req, ok := h.decodeRequest(ctx)
	if !ok {
		return
	}
	resp := h.process(ctx, req)
	projection := resp.CalculationResult.OptionA
	if side == model.SideB {
		projection = resp.CalculationResult.OptionB
	}
	if projection == nil {
		writeJSON(ctx, fasthttp.StatusUnprocessableEntity, resp)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, projection.Breakdown); err != nil {
		h.log.Error("csv export failed", zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "CSV export failed")
		return
	}
	ctx.SetContentType("text/csv; charset=utf-8")
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="breakdown-`+side+`.csv"`)
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(buf.Bytes())
}

func (h *Handler) handleExportPDF(ctx *fasthttp.RequestCtx) {
	req, ok := h.decodeRequest(ctx)
	if !ok {
		return
	}
	resp := h.process(ctx, req)
	if resp.CalculationResult.Comparison == nil {
		writeJSON(ctx, fasthttp.StatusUnprocessableEntity, resp)
		return
	}

	data, err := report.PDF(resp)
	if err != nil {
		h.log.Error("pdf export failed", zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "PDF export failed")
		return
	}
	ctx.SetContentType("application/pdf")
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="opportunity-cost.pdf"`)
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(data)
}

func (h *Handler) handleRates(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, rates.Presets())
}

// decodeRequest reads a CalculationRequest from the body and prepares it.
// It writes the error response itself and reports whether to continue.
func (h *Handler) decodeRequest(ctx *fasthttp.RequestCtx) (*model.CalculationRequest, bool) {
	body := ctx.PostBody()
	if len(bytes.TrimSpace(body)) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "Request body is required")
		return nil, false
	}

	var req model.CalculationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}
	if err := validateBody(calculationSchema, body); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return nil, false
	}
	if !h.prepare(ctx, &req) {
		return nil, false
	}
	return &req, true
}

func (h *Handler) prepare(ctx *fasthttp.RequestCtx, req *model.CalculationRequest) bool {
	if req.Parameters.Years > h.cfg.MaxYears {
		writeError(ctx, fasthttp.StatusBadRequest,
			"years must not exceed "+strconv.Itoa(h.cfg.MaxYears))
		return false
	}

	params, err := h.resolver.Apply(req.Parameters)
	if err != nil {
		if errors.Is(err, rates.ErrUnknownSource) {
			writeError(ctx, fasthttp.StatusBadRequest, err.Error())
			return false
		}
		h.log.Error("resolve market rate", zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "Market rate lookup failed")
		return false
	}
	req.Parameters = params
	return true
}

func (h *Handler) process(ctx *fasthttp.RequestCtx, req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()
	resp := engine.Process(req)
	metrics.CalculationDuration.Observe(time.Since(start).Seconds())
	metrics.CalculationsTotal.WithLabelValues(resp.CalculationMetadata.CalculationOutcome).Inc()
	ctx.SetUserValue(calculationIDKey, resp.CalculationMetadata.CalculationID)
	return resp
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString(`{"status":500,"message":"Failed to encode response"}`)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
