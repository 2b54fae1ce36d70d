// Package share encodes a calculation request as a flat URL query string and
// decodes it back. Numeric values that do not parse behave as 0.
package share

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"opportunity-engine/internal/fields"
	"opportunity-engine/internal/model"
)

const (
	keyYears      = "years"
	keyRate       = "rate"
	keyRateSource = "rate_source"

	defaultNameA = "Option A"
	defaultNameB = "Option B"
)

var ErrEmptyQuery = errors.New("share query is empty")

// Encode renders the parameters and both options. Keys are sorted.
func Encode(req *model.CalculationRequest) string {
	v := url.Values{}
	v.Set(keyYears, strconv.Itoa(req.Parameters.Years))
	v.Set(keyRate, strconv.FormatFloat(req.Parameters.MarketRate, 'f', -1, 64))
	if req.Parameters.MarketRateSource != "" {
		v.Set(keyRateSource, req.Parameters.MarketRateSource)
	}
	for _, f := range fields.All() {
		v.Set(key(model.SideA, f), f.Format(req.OptionA))
		v.Set(key(model.SideB, f), f.Format(req.OptionB))
	}
	return v.Encode()
}

// Decode parses a query produced by Encode. A leading "?" is ignored and
// unknown keys are skipped.
func Decode(query string) (*model.CalculationRequest, error) {
	query = strings.TrimPrefix(strings.TrimSpace(query), "?")
	if query == "" {
		return nil, ErrEmptyQuery
	}
	v, err := url.ParseQuery(query)
	if err != nil {
		return nil, err
	}
	return FromValues(v), nil
}

// FromValues builds a request from already parsed query values.
func FromValues(v url.Values) *model.CalculationRequest {
	req := &model.CalculationRequest{
		Parameters: model.Parameters{
			Years:            int(fields.ParseNumber(v.Get(keyYears))),
			MarketRate:       fields.ParseNumber(v.Get(keyRate)),
			MarketRateSource: v.Get(keyRateSource),
		},
		OptionA: model.Option{Name: defaultNameA},
		OptionB: model.Option{Name: defaultNameB},
	}

	for _, f := range fields.All() {
		if raw, ok := lookup(v, key(model.SideA, f)); ok {
			req.OptionA = fields.FromRaw(f, raw).Apply(req.OptionA)
		}
		if raw, ok := lookup(v, key(model.SideB, f)); ok {
			req.OptionB = fields.FromRaw(f, raw).Apply(req.OptionB)
		}
	}
	return req
}

func key(side string, f fields.Field) string {
	return side + "_" + f.Key()
}

// lookup treats an empty name as absent so the default label survives.
func lookup(v url.Values, k string) (string, bool) {
	if _, ok := v[k]; !ok {
		return "", false
	}
	raw := v.Get(k)
	if strings.HasSuffix(k, "_"+fields.Name.Key()) && strings.TrimSpace(raw) == "" {
		return "", false
	}
	return raw, true
}
