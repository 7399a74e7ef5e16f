package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolInput_ConfigWinsOverInputs(t *testing.T) {
	in := ToolInput{
		Config: map[string]any{"engine": "tavily", "limit": int64(5)},
		Inputs: map[string]any{"engine": "trafilatura", "limit": 50, "refetch": true},
	}

	assert.Equal(t, "tavily", in.GetString("engine", "httpx"))
	assert.Equal(t, 5, in.GetInt("limit", 1))
	assert.True(t, in.GetBool("refetch", false), "inputs used when config has no key")
}

func TestToolInput_Defaults(t *testing.T) {
	in := ToolInput{}

	assert.Equal(t, "fallback", in.GetString("missing", "fallback"))
	assert.Equal(t, 7, in.GetInt("missing", 7))
	assert.True(t, in.GetBool("missing", true))
	assert.Equal(t, 0.88, in.GetFloat("missing", 0.88))
}

func TestToolInput_NumericCoercion(t *testing.T) {
	in := ToolInput{Config: map[string]any{
		"from_json": float64(42), // JSON decoding
		"from_toml": int64(42),   // TOML decoding
		"native":    42,
	}}

	for _, key := range []string{"from_json", "from_toml", "native"} {
		assert.Equal(t, 42, in.GetInt(key, 0), key)
		assert.Equal(t, 42.0, in.GetFloat(key, 0), key)
	}
}

func TestToolInput_TypeMismatchFallsBack(t *testing.T) {
	in := ToolInput{Config: map[string]any{"engine": 12, "limit": "many"}}

	assert.Equal(t, "def", in.GetString("engine", "def"))
	assert.Equal(t, 3, in.GetInt("limit", 3))
}

func TestStepContext_IsCanceledNilSafe(t *testing.T) {
	var sc *StepContext
	assert.False(t, sc.IsCanceled(context.Background()))

	sc = &StepContext{}
	assert.False(t, sc.IsCanceled(context.Background()))

	sc.Canceled = func(ctx context.Context) bool { return true }
	assert.True(t, sc.IsCanceled(context.Background()))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"transient wrapper", Transient(errors.New("timeout")), KindTransient},
		{"permanent wrapper", Permanent(errors.New("404")), KindPermanent},
		{"fatal wrapper", Fatal(errors.New("schema mismatch")), KindFatal},
		{"validation error", NewValidationError("bad graph"), KindValidation},
		{"not found error", NewNotFoundError("workflow", "wf-1"), KindNotFound},
		{"plain error defaults to permanent", errors.New("whatever"), KindPermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(Transient(errors.New("rate limited"))))
	assert.False(t, IsTransient(Permanent(errors.New("paywall"))))
	assert.False(t, IsTransient(errors.New("plain")))
}

func TestErrorWrappersPreserveNil(t *testing.T) {
	assert.NoError(t, Transient(nil))
	assert.NoError(t, Permanent(nil))
	assert.NoError(t, Fatal(nil))
}
