package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDataset_PreservesCurves(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	d := createTestDataset(t, 4, true)
	run, err := s.WriteRun(ctx, createTestRun(t, "run-1", d), d)
	require.NoError(t, err)

	got, err := s.ReadDataset(ctx, run)
	require.NoError(t, err)

	assert.Equal(t, d.Seed, got.Seed)
	assert.Equal(t, d.Rows, got.Rows)
	assert.Equal(t, d.Digest(), got.Digest())
	assert.InDeltaSlice(t, d.Grid, got.Grid, 0)
}

func TestReadDataset_NoDerivative(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	d := createTestDataset(t, 2, false)
	run, err := s.WriteRun(ctx, createTestRun(t, "run-1", d), d)
	require.NoError(t, err)

	got, err := s.ReadDataset(ctx, run)
	require.NoError(t, err)
	assert.False(t, got.HasDerivative())
	for _, r := range got.Rows {
		assert.Nil(t, r.Derivative)
	}
}

func TestGetRun(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	d := createTestDataset(t, 2, true)
	want, err := s.WriteRun(ctx, createTestRun(t, "run-1", d), d)
	require.NoError(t, err)

	got, err := s.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, want.Seq, got.Seq)
	assert.Equal(t, d.Seed, got.Seed, "uint64 seeds with the high bit set survive storage")
	assert.Equal(t, want.Digest, got.Digest)
	assert.True(t, got.Derivative)
	assert.Equal(t, 3+4, got.Attempts)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))

	cfg, err := got.ParsedConfig()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Rows)
	assert.Equal(t, 4, cfg.GridPoints)

	_, err = s.GetRun(ctx, "missing")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestLatestRunAndList(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.LatestRun(ctx)
	assert.ErrorIs(t, err, ErrRunNotFound)

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Empty(t, runs)

	d := createTestDataset(t, 1, false)
	for _, id := range []string{"run-a", "run-b", "run-c"} {
		_, err := s.WriteRun(ctx, createTestRun(t, id, d), d)
		require.NoError(t, err)
	}

	latest, err := s.LatestRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, "run-c", latest.ID)

	runs, err = s.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "run-a", runs[0].ID)
	assert.Equal(t, "run-c", runs[2].ID)
}

func TestFindRunByDigest(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	d := createTestDataset(t, 2, true)
	_, err := s.WriteRun(ctx, createTestRun(t, "run-1", d), d)
	require.NoError(t, err)
	_, err = s.WriteRun(ctx, createTestRun(t, "run-2", d), d)
	require.NoError(t, err)

	found, err := s.FindRunByDigest(ctx, d.Digest())
	require.NoError(t, err)
	assert.Equal(t, "run-1", found.ID)

	_, err = s.FindRunByDigest(ctx, "nope")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestDecodeFloats_RejectsTruncatedBlob(t *testing.T) {
	_, err := decodeFloats([]byte{1, 2, 3})
	require.Error(t, err)

	vs, err := decodeFloats(encodeFloats([]float64{1.5, -2}))
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2}, vs)
}
