package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	// must not panic
	l.Info().Str("k", "v").Msg("discarded")
}

func TestFromContext_RoundTrip(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	require.NotNil(t, child)

	ctx := child.WithContext(context.Background())
	got := FromContext(ctx)
	assert.NotNil(t, got)
}

func TestFromRequest(t *testing.T) {
	l := Nop()
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	got := FromRequest(req)
	assert.NotNil(t, got)
}
