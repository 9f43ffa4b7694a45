package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRun_AssignsSeq(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	d := createTestDataset(t, 3, true)
	first, err := s.WriteRun(ctx, createTestRun(t, "run-1", d), d)
	require.NoError(t, err)
	second, err := s.WriteRun(ctx, createTestRun(t, "run-2", d), d)
	require.NoError(t, err)

	assert.Greater(t, first.Seq, int64(0))
	assert.Greater(t, second.Seq, first.Seq)
}

func TestWriteRun_DuplicateID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	d := createTestDataset(t, 2, false)
	run := createTestRun(t, "run-1", d)
	_, err := s.WriteRun(ctx, run, d)
	require.NoError(t, err)

	_, err = s.WriteRun(ctx, run, d)
	require.Error(t, err)

	// The failed transaction must not leave extra curves behind.
	var count int
	require.NoError(t, s.db.Get(&count, "SELECT COUNT(*) FROM curves"))
	assert.Equal(t, 2, count)
}

func TestWriteRun_RowCountMismatch(t *testing.T) {
	s := createTestStore(t)

	d := createTestDataset(t, 2, false)
	run := createTestRun(t, "run-1", d)
	run.Rows = 5

	_, err := s.WriteRun(context.Background(), run, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header has 5 rows")
}

func TestDeleteRun(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	d := createTestDataset(t, 2, true)
	_, err := s.WriteRun(ctx, createTestRun(t, "run-1", d), d)
	require.NoError(t, err)

	require.NoError(t, s.DeleteRun(ctx, "run-1"))

	var count int
	require.NoError(t, s.db.Get(&count, "SELECT COUNT(*) FROM curves"))
	assert.Zero(t, count, "curves must cascade")

	err = s.DeleteRun(ctx, "run-1")
	assert.True(t, errors.Is(err, ErrRunNotFound))
}
