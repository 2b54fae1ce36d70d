// Package rates resolves named market rate sources to annual percentages.
//
// A Resolver consults an optional remote registry first and caches what it
// returns; when the registry is not configured or fails it falls back to the
// built-in presets.
package rates

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"opportunity-engine/internal/metrics"
	"opportunity-engine/internal/model"
)

var ErrUnknownSource = errors.New("unknown market rate source")

type Resolver struct {
	registryURL string
	timeout     time.Duration
	client      *fasthttp.Client
	cache       sync.Map
	log         *zap.Logger
}

type rateResponse struct {
	ID           string  `json:"id"`
	AnnualReturn float64 `json:"annual_return"`
}

// NewResolver returns a Resolver. An empty registryURL disables remote lookups.
func NewResolver(registryURL string, timeout time.Duration, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Resolver{
		registryURL: strings.TrimRight(registryURL, "/"),
		timeout:     timeout,
		log:         log,
	}
	if r.registryURL != "" {
		r.client = &fasthttp.Client{
			MaxConnsPerHost:     100,
			MaxIdleConnDuration: 90 * time.Second,
		}
	}
	return r
}

// Resolve returns the annual return in percent for the source id.
func (r *Resolver) Resolve(id string) (float64, error) {
	if v, ok := r.cache.Load(id); ok {
		metrics.RateLookupsTotal.WithLabelValues("cache", "hit").Inc()
		return v.(float64), nil
	}

	if r.client != nil {
		rate, err := r.fetch(id)
		if err == nil {
			r.cache.Store(id, rate)
			metrics.RateLookupsTotal.WithLabelValues("registry", "hit").Inc()
			return rate, nil
		}
		metrics.RateLookupsTotal.WithLabelValues("registry", "error").Inc()
		r.log.Warn("rate registry lookup failed, using presets",
			zap.String("source", id), zap.Error(err))
	}

	if p, ok := lookupPreset(id); ok {
		metrics.RateLookupsTotal.WithLabelValues("preset", "hit").Inc()
		return p.AnnualReturn, nil
	}
	metrics.RateLookupsTotal.WithLabelValues("preset", "miss").Inc()
	return 0, fmt.Errorf("%w: %q", ErrUnknownSource, id)
}

// Apply replaces p.MarketRate with the resolved rate when p names a source.
func (r *Resolver) Apply(p model.Parameters) (model.Parameters, error) {
	if p.MarketRateSource == "" {
		return p, nil
	}
	rate, err := r.Resolve(p.MarketRateSource)
	if err != nil {
		return p, err
	}
	p.MarketRate = rate
	return p, nil
}

func (r *Resolver) fetch(id string) (float64, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(r.registryURL + "/rates/" + url.PathEscape(id))
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := r.client.DoTimeout(req, resp, r.timeout); err != nil {
		return 0, fmt.Errorf("fetch rate %s: %w", id, err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return 0, fmt.Errorf("fetch rate %s: status %d", id, resp.StatusCode())
	}

	var rr rateResponse
	if err := json.Unmarshal(resp.Body(), &rr); err != nil {
		return 0, fmt.Errorf("decode rate %s: %w", id, err)
	}
	return rr.AnnualReturn, nil
}
