package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacer_EspacaAquisicoesDaMesmaChave(t *testing.T) {
	p := NewPacer()
	ctx := context.Background()
	gap := 50 * time.Millisecond

	start := time.Now()
	require.NoError(t, p.Wait(ctx, "shopee:123", gap))
	require.NoError(t, p.Wait(ctx, "shopee:123", gap))
	require.NoError(t, p.Wait(ctx, "shopee:123", gap))
	elapsed := time.Since(start)

	// Três aquisições exigem ao menos dois intervalos completos
	assert.GreaterOrEqual(t, elapsed, 2*gap)
}

func TestPacer_ChavesIndependentes(t *testing.T) {
	p := NewPacer()
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, p.Wait(ctx, "shopee:1", 200*time.Millisecond))
	require.NoError(t, p.Wait(ctx, "shopify:1", 200*time.Millisecond))
	elapsed := time.Since(start)

	// Chaves distintas não se bloqueiam
	assert.Less(t, elapsed, 150*time.Millisecond)
}

func TestPacer_ContextoCancelado(t *testing.T) {
	p := NewPacer()
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, p.Wait(ctx, "tiny:1", time.Second))
	cancel()

	err := p.Wait(ctx, "tiny:1", time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}
