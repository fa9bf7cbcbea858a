package generator

import (
	"context"

	"github.com/go-playground/validator/v10"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/flaggen/flaggen/internal/charset"
	"github.com/flaggen/flaggen/internal/flagfmt"
	"github.com/flaggen/flaggen/internal/metrics"
)

// AttemptMultiplier bounds the number of samples per batch to Count*AttemptMultiplier.
const AttemptMultiplier = 10

// Request describes one batch.
type Request struct {
	Count    int             `validate:"gte=1"`
	Length   int             `validate:"gte=0"`
	Charset  charset.Charset `validate:"oneof=alnum hex digits words"`
	Prefix   string
	Suffix   string
	Template string
	Unique   bool
}

// Result is a finished batch. On failure Flags is nil but the counters
// still describe the work done.
type Result struct {
	BatchID    string
	Flags      []string
	Attempts   int
	Duplicates int
}

// Sampler produces the random part of a flag.
type Sampler interface {
	Sample(length int, cs charset.Charset) (string, error)
}

// Recorder receives generation statistics.
type Recorder interface {
	Attempt(charset string)
	Duplicate(charset string)
	Generated(charset string, n int)
	Batch(result string)
}

// Option configures a Generator.
type Option func(*Generator)

// WithRecorder sets the statistics recorder.
func WithRecorder(r Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// WithBatchID replaces the batch id source.
func WithBatchID(fn func() (string, error)) Option {
	return func(g *Generator) {
		if fn != nil {
			g.batchID = fn
		}
	}
}

// Generator builds flag batches. It holds no per-batch state and a single
// Generator may serve consecutive batches.
type Generator struct {
	sampler   Sampler
	recorder  Recorder
	validator *validator.Validate
	batchID   func() (string, error)
}

// New creates a Generator drawing tokens from sampler.
func New(sampler Sampler, opts ...Option) *Generator {
	g := &Generator{
		sampler:   sampler,
		recorder:  nopRecorder{},
		validator: validator.New(),
		batchID:   func() (string, error) { return gonanoid.New() },
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate builds a batch of req.Count flags.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	if err := g.validator.Struct(req); err != nil {
		g.recorder.Batch(metrics.ResultError)

		return Result{}, errors.Wrap(ErrInvalidRequest, err.Error())
	}

	id, err := g.batchID()
	if err != nil {
		g.recorder.Batch(metrics.ResultError)

		return Result{}, errors.Wrap(err, "failed to create batch id")
	}

	var (
		res    = Result{BatchID: id}
		budget = req.Count * AttemptMultiplier
		flags  = make([]string, 0, req.Count)
		seen   map[string]struct{}
		cs     = req.Charset.String()
	)

	if req.Unique {
		seen = make(map[string]struct{}, req.Count)
	}

	logger := log.With().Str("batch", id).Str("charset", cs).Logger()
	logger.Debug().
		Int("count", req.Count).
		Int("length", req.Length).
		Bool("unique", req.Unique).
		Int("budget", budget).
		Msg("generating flags")

	for len(flags) < req.Count && res.Attempts < budget {
		if ctxErr := ctx.Err(); ctxErr != nil {
			g.recorder.Batch(metrics.ResultError)

			return res, errors.Wrap(ctxErr, "generation aborted")
		}

		tok, err := g.sampler.Sample(req.Length, req.Charset)
		if err != nil {
			g.recorder.Batch(metrics.ResultError)

			return res, errors.Wrap(err, "failed to sample token")
		}

		flag := flagfmt.Format(req.Template, req.Prefix, tok, req.Suffix)

		res.Attempts++
		g.recorder.Attempt(cs)

		if req.Unique {
			if _, ok := seen[flag]; ok {
				res.Duplicates++
				g.recorder.Duplicate(cs)
				logger.Trace().Str("flag", flag).Msg("duplicate flag discarded")

				continue
			}

			seen[flag] = struct{}{}
		}

		flags = append(flags, flag)
	}

	if len(flags) < req.Count {
		g.recorder.Batch(metrics.ResultInsufficientUnique)
		logger.Warn().
			Int("wanted", req.Count).
			Int("got", len(flags)).
			Int("attempts", res.Attempts).
			Msg("attempt budget exhausted")

		return res, ErrInsufficientUniqueFlags
	}

	res.Flags = flags

	g.recorder.Generated(cs, len(flags))
	g.recorder.Batch(metrics.ResultOK)
	logger.Debug().
		Int("attempts", res.Attempts).
		Int("duplicates", res.Duplicates).
		Msg("flags generated")

	return res, nil
}

type nopRecorder struct{}

func (nopRecorder) Attempt(string)        {}
func (nopRecorder) Duplicate(string)      {}
func (nopRecorder) Generated(string, int) {}
func (nopRecorder) Batch(string)          {}
