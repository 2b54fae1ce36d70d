package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"opportunity-engine/internal/engine"
	"opportunity-engine/internal/model"
	"opportunity-engine/internal/rates"
	"opportunity-engine/internal/report"
	"opportunity-engine/internal/scenario"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatCSV  = "csv"
	formatPDF  = "pdf"
)

type runner struct {
	format   string
	outDir   string
	parallel int
	resolver *rates.Resolver
	log      *zap.Logger
	stdout   io.Writer
}

type result struct {
	path string
	name string
	resp *model.CalculationResponse
}

// run evaluates every scenario file concurrently, then writes the results in
// argument order.
func (r *runner) run(ctx context.Context, paths []string) error {
	switch r.format {
	case formatText, formatJSON, formatCSV, formatPDF:
	default:
		return fmt.Errorf("unknown format %q", r.format)
	}
	if r.outDir == "" && (r.format == formatCSV || r.format == formatPDF) {
		r.outDir = "."
	}
	if r.outDir != "" {
		if err := os.MkdirAll(r.outDir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	results := make([]*result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, r.parallel))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.evaluate(path)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		if err := r.emit(res); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) evaluate(path string) (*result, error) {
	s, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	req := s.Request()

	params, err := r.resolver.Apply(req.Parameters)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	req.Parameters = params

	resp := engine.Process(req)
	r.log.Debug("scenario evaluated",
		zap.String("path", path),
		zap.String("calculation_id", resp.CalculationMetadata.CalculationID),
		zap.Float64("market_rate", params.MarketRate),
		zap.Int64("duration_ms", resp.CalculationMetadata.CalculationDurationMs))

	name := s.Name
	if name == "" {
		name = baseName(path)
	}
	return &result{path: path, name: name, resp: resp}, nil
}

func (r *runner) emit(res *result) error {
	base := baseName(res.path)

	switch r.format {
	case formatText:
		text := report.Text(res.resp)
		if r.outDir != "" {
			return r.writeFile(base+".txt", []byte(text))
		}
		r.printSummary(res, text)
		return nil

	case formatJSON:
		data, err := json.MarshalIndent(res.resp, "", "  ")
		if err != nil {
			return fmt.Errorf("%s: encode: %w", res.path, err)
		}
		if r.outDir != "" {
			return r.writeFile(base+".json", data)
		}
		_, err = fmt.Fprintln(r.stdout, string(data))
		return err

	case formatCSV:
		calc := res.resp.CalculationResult
		if calc.OptionA == nil || calc.OptionB == nil {
			return failed(res)
		}
		sides := []struct {
			key string
			p   *model.OptionProjection
		}{
			{model.SideA, calc.OptionA},
			{model.SideB, calc.OptionB},
		}
		for _, side := range sides {
			var b strings.Builder
			if err := report.WriteCSV(&b, side.p.Breakdown); err != nil {
				return fmt.Errorf("%s: csv: %w", res.path, err)
			}
			if err := r.writeFile(base+"-"+side.key+".csv", []byte(b.String())); err != nil {
				return err
			}
		}
		return nil

	case formatPDF:
		if res.resp.CalculationResult.Comparison == nil {
			return failed(res)
		}
		data, err := report.PDF(res.resp)
		if err != nil {
			return fmt.Errorf("%s: %w", res.path, err)
		}
		return r.writeFile(base+".pdf", data)
	}
	return nil
}

func (r *runner) printSummary(res *result, text string) {
	fmt.Fprintln(r.stdout, titleStyle.Render(res.name))
	fmt.Fprintln(r.stdout, boxStyle.Render(strings.TrimRight(text, "\n")))

	switch {
	case res.resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess:
		fmt.Fprintln(r.stdout, errorStyle.Render("✗ "+res.path))
	case len(res.resp.CalculationResult.Messages) > 0:
		fmt.Fprintln(r.stdout, warningStyle.Render("! "+res.path))
	default:
		fmt.Fprintln(r.stdout, successStyle.Render("✓ "+res.path))
	}
	fmt.Fprintln(r.stdout, dimStyle.Render(res.resp.CalculationMetadata.CalculationID))
	fmt.Fprintln(r.stdout)
}

func (r *runner) writeFile(name string, data []byte) error {
	path := filepath.Join(r.outDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintln(r.stdout, successStyle.Render("wrote "+path))
	return nil
}

func failed(res *result) error {
	var codes []string
	for _, m := range res.resp.CalculationResult.Messages {
		if m.Level == model.LevelCritical {
			codes = append(codes, m.Code)
		}
	}
	return fmt.Errorf("%s: calculation failed: %s", res.path, strings.Join(codes, ", "))
}

func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
