package app

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/flaggen/flaggen/internal/charset"
	"github.com/flaggen/flaggen/internal/config"
	"github.com/flaggen/flaggen/internal/flagfmt"
	"github.com/flaggen/flaggen/internal/generator"
	"github.com/flaggen/flaggen/internal/metrics"
	"github.com/flaggen/flaggen/internal/output"
	"github.com/flaggen/flaggen/internal/token"
)

// generate runs one batch and writes it to the configured destination.
// An unfillable unique batch is reported on out and is not an error.
func generate(ctx context.Context, out io.Writer, cfg *config.Config, m *metrics.Metrics) error {
	cs, err := charset.Parse(cfg.Generator.Charset)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	template := flagfmt.ResolveTemplate(cfg.Generator.Template, cfg.Generator.NoBraces)
	if !flagfmt.HasToken(template) {
		log.Warn().Str("template", template).Msg("template has no {token} marker, every flag will be identical")
	}

	gen := generator.New(token.New(nil), generator.WithRecorder(m))

	res, err := gen.Generate(ctx, generator.Request{
		Count:    cfg.Generator.Number,
		Length:   cfg.Generator.Length,
		Charset:  cs,
		Prefix:   cfg.Generator.Prefix,
		Suffix:   cfg.Generator.Suffix,
		Template: template,
		Unique:   cfg.Generator.Unique,
	})

	switch {
	case errors.Is(err, generator.ErrInsufficientUniqueFlags):
		if _, werr := fmt.Fprintln(out, "ERROR:", err); werr != nil {
			return errors.Wrap(werr, "failed to report error")
		}

		return writeMetrics(cfg, m)
	case err != nil:
		return err
	}

	if err = emit(out, cfg.Output.Path, output.New(format), res.Flags); err != nil {
		return err
	}

	log.Info().
		Str("batch", res.BatchID).
		Int("flags", len(res.Flags)).
		Int("attempts", res.Attempts).
		Int("duplicates", res.Duplicates).
		Msg("batch written")

	return writeMetrics(cfg, m)
}

// emit writes flags to path, or to out if path is empty. The batch is fully
// encoded before anything is written.
func emit(out io.Writer, path string, w *output.Writer, flags []string) error {
	if path != "" {
		if err := w.WriteFile(path, flags); err != nil {
			return err
		}

		_, err := fmt.Fprintf(out, "Wrote %d flags to %s\n", len(flags), path)

		return errors.Wrap(err, "failed to write confirmation")
	}

	content, err := w.Encode(flags)
	if err != nil {
		return err
	}

	_, err = out.Write(content)

	return errors.Wrap(err, "failed to write flags")
}

func writeMetrics(cfg *config.Config, m *metrics.Metrics) error {
	if cfg.Metrics.File == "" {
		return nil
	}

	return m.WriteTextfile(cfg.Metrics.File)
}
