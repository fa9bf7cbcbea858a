package generator_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/flaggen/flaggen/internal/charset"
	"github.com/flaggen/flaggen/internal/flagfmt"
	"github.com/flaggen/flaggen/internal/generator"
	"github.com/flaggen/flaggen/internal/metrics"
	"github.com/flaggen/flaggen/internal/token"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func seededSampler(seed byte) *token.Sampler {
	var s [32]byte
	s[0] = seed

	return token.New(rand.NewChaCha8(s))
}

// fixedSampler returns its tokens in order and repeats the last one.
type fixedSampler struct {
	tokens []string
	calls  int
}

func (f *fixedSampler) Sample(int, charset.Charset) (string, error) {
	i := min(f.calls, len(f.tokens)-1)
	f.calls++

	return f.tokens[i], nil
}

type failingSampler struct{}

func (failingSampler) Sample(int, charset.Charset) (string, error) {
	return "", errors.New("entropy exhausted") //nolint:goerr113
}

func request(count, length int, cs charset.Charset, unique bool) generator.Request {
	return generator.Request{
		Count:    count,
		Length:   length,
		Charset:  cs,
		Prefix:   "CTF",
		Template: flagfmt.DefaultTemplate,
		Unique:   unique,
	}
}

func TestGenerate_Count(t *testing.T) {
	gen := generator.New(seededSampler(1))

	for _, cs := range []charset.Charset{charset.Alnum, charset.Hex, charset.Digits, charset.Words} {
		t.Run(cs.String(), func(t *testing.T) {
			res, err := gen.Generate(context.Background(), request(25, 8, cs, false))
			require.NoError(t, err)
			require.Len(t, res.Flags, 25)
			assert.Equal(t, 25, res.Attempts)
			assert.NotEmpty(t, res.BatchID)

			for _, flag := range res.Flags {
				// CTF + { + 8 + }
				assert.Len(t, flag, 3+1+8+1)
				assert.True(t, strings.HasPrefix(flag, "CTF{"))
				assert.True(t, strings.HasSuffix(flag, "}"))
			}
		})
	}
}

func TestGenerate_FlagShape(t *testing.T) {
	gen := generator.New(seededSampler(2))

	req := request(10, 12, charset.Hex, false)
	req.Prefix = "flag"
	req.Suffix = "_end"
	req.Template = "{prefix}-{token}{suffix}"

	res, err := gen.Generate(context.Background(), req)
	require.NoError(t, err)

	for _, flag := range res.Flags {
		require.Len(t, flag, len("flag-")+12+len("_end"))

		tok := strings.TrimSuffix(strings.TrimPrefix(flag, "flag-"), "_end")
		for _, r := range tok {
			assert.True(t, charset.Hex.Contains(r))
		}
	}
}

func TestGenerate_Template(t *testing.T) {
	gen := generator.New(&fixedSampler{tokens: []string{"abcd1234"}})

	req := request(1, 8, charset.Alnum, false)
	req.Prefix = "X"
	req.Template = "{prefix}-{token}"

	res, err := gen.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"X-abcd1234"}, res.Flags)
}

func TestGenerate_DefaultTemplate(t *testing.T) {
	gen := generator.New(&fixedSampler{tokens: []string{"a1b2c3d4"}})

	res, err := gen.Generate(context.Background(), request(1, 8, charset.Alnum, false))
	require.NoError(t, err)
	assert.Equal(t, []string{"CTF{a1b2c3d4}"}, res.Flags)
}

func TestGenerate_NoBraces(t *testing.T) {
	gen := generator.New(seededSampler(4))

	req := request(20, 8, charset.Alnum, false)
	req.Template = flagfmt.ResolveTemplate(flagfmt.DefaultTemplate, true)

	res, err := gen.Generate(context.Background(), req)
	require.NoError(t, err)

	for _, flag := range res.Flags {
		assert.False(t, strings.ContainsAny(flag, "{}"), flag)
	}
}

func TestGenerate_Unique(t *testing.T) {
	gen := generator.New(seededSampler(5))

	// 100 distinct values exist, 60 are asked for
	res, err := gen.Generate(context.Background(), request(60, 2, charset.Digits, true))
	require.NoError(t, err)
	require.Len(t, res.Flags, 60)

	seen := make(map[string]bool, len(res.Flags))
	for _, flag := range res.Flags {
		assert.False(t, seen[flag], "duplicate flag %s", flag)
		seen[flag] = true
	}

	assert.Equal(t, res.Attempts, len(res.Flags)+res.Duplicates)
}

func TestGenerate_DuplicatesAreDiscarded(t *testing.T) {
	sampler := &fixedSampler{tokens: []string{"aa", "aa", "bb", "aa", "cc"}}
	gen := generator.New(sampler)

	res, err := gen.Generate(context.Background(), request(3, 2, charset.Alnum, true))
	require.NoError(t, err)
	assert.Equal(t, []string{"CTF{aa}", "CTF{bb}", "CTF{cc}"}, res.Flags)
	assert.Equal(t, 5, res.Attempts)
	assert.Equal(t, 2, res.Duplicates)
}

func TestGenerate_DuplicatesKeptWithoutUnique(t *testing.T) {
	gen := generator.New(&fixedSampler{tokens: []string{"aa"}})

	res, err := gen.Generate(context.Background(), request(3, 2, charset.Alnum, false))
	require.NoError(t, err)
	assert.Equal(t, []string{"CTF{aa}", "CTF{aa}", "CTF{aa}"}, res.Flags)
	assert.Zero(t, res.Duplicates)
}

func TestGenerate_InsufficientUniqueFlags(t *testing.T) {
	m := metrics.New()
	gen := generator.New(seededSampler(6), generator.WithRecorder(m))

	// only 10 distinct one digit tokens exist
	res, err := gen.Generate(context.Background(), request(100, 1, charset.Digits, true))
	require.ErrorIs(t, err, generator.ErrInsufficientUniqueFlags)
	assert.Nil(t, res.Flags)
	assert.Equal(t, 100*generator.AttemptMultiplier, res.Attempts)
	assert.Equal(t, res.Attempts-10, res.Duplicates)

	assert.InDelta(t, 1000, mustCounter(t, m, "flaggen_attempts_total"), 0)
}

func TestGenerate_BudgetStopsConstantTemplate(t *testing.T) {
	sampler := &fixedSampler{tokens: []string{"x"}}
	gen := generator.New(sampler)

	req := request(5, 1, charset.Alnum, true)
	req.Template = "static"

	_, err := gen.Generate(context.Background(), req)
	require.ErrorIs(t, err, generator.ErrInsufficientUniqueFlags)
	assert.Equal(t, 5*generator.AttemptMultiplier, sampler.calls)
}

func TestGenerate_ZeroLength(t *testing.T) {
	gen := generator.New(seededSampler(7))

	res, err := gen.Generate(context.Background(), request(3, 0, charset.Words, false))
	require.NoError(t, err)
	assert.Equal(t, []string{"CTF{}", "CTF{}", "CTF{}"}, res.Flags)
}

func TestGenerate_InvalidRequest(t *testing.T) {
	gen := generator.New(seededSampler(8))

	tests := []struct {
		name string
		req  generator.Request
	}{
		{"zero count", request(0, 8, charset.Alnum, false)},
		{"negative count", request(-1, 8, charset.Alnum, false)},
		{"negative length", request(1, -1, charset.Alnum, false)},
		{"unknown charset", request(1, 8, charset.Charset("base64"), false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gen.Generate(context.Background(), tt.req)
			require.ErrorIs(t, err, generator.ErrInvalidRequest)
		})
	}
}

func TestGenerate_SamplerError(t *testing.T) {
	gen := generator.New(failingSampler{})

	_, err := gen.Generate(context.Background(), request(1, 8, charset.Alnum, false))
	require.Error(t, err)
	assert.NotErrorIs(t, err, generator.ErrInsufficientUniqueFlags)
}

func TestGenerate_Canceled(t *testing.T) {
	gen := generator.New(seededSampler(9))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Generate(ctx, request(5, 8, charset.Alnum, false))
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_BatchID(t *testing.T) {
	gen := generator.New(seededSampler(10), generator.WithBatchID(func() (string, error) {
		return "batch-1", nil
	}))

	res, err := gen.Generate(context.Background(), request(1, 4, charset.Hex, false))
	require.NoError(t, err)
	assert.Equal(t, "batch-1", res.BatchID)

	gen = generator.New(seededSampler(10), generator.WithBatchID(func() (string, error) {
		return "", errors.New("no id") //nolint:goerr113
	}))

	_, err = gen.Generate(context.Background(), request(1, 4, charset.Hex, false))
	require.Error(t, err)
}

func TestGenerate_Recorder(t *testing.T) {
	m := metrics.New()
	gen := generator.New(&fixedSampler{tokens: []string{"a", "a", "b"}}, generator.WithRecorder(m))

	_, err := gen.Generate(context.Background(), request(2, 1, charset.Alnum, true))
	require.NoError(t, err)

	assert.InDelta(t, 3, mustCounter(t, m, "flaggen_attempts_total"), 0)
	assert.InDelta(t, 1, mustCounter(t, m, "flaggen_duplicates_total"), 0)
	assert.InDelta(t, 2, mustCounter(t, m, "flaggen_flags_generated_total"), 0)
}

// mustCounter gathers the single series of a metric family from the registry.
func mustCounter(t *testing.T, m *metrics.Metrics, name string) float64 {
	t.Helper()

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() == name {
			require.Len(t, mf.GetMetric(), 1)

			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}

	t.Fatalf("metric %s not found", name)

	return 0
}
