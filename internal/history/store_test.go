package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "clai.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func TestNilStore_DiscardsWrites(t *testing.T) {
	var s *Store
	ctx := context.Background()

	assert.NoError(t, s.RecordInput(ctx, "@coder hi"))
	assert.NoError(t, s.RecordExchange(ctx, Exchange{Role: "coder"}))
	assert.NoError(t, s.RecordRun(ctx, Run{RunID: "x"}))
	assert.NoError(t, s.Close())

	got, err := s.RecentExchanges(ctx, "", 10)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRecordAndRecallExchanges(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordExchange(ctx, Exchange{
		Role: "coder", Model: "claude-sonnet-4-20250514",
		Prompt: "write it", Reply: "done", TotalTokens: 30,
	}))
	require.NoError(t, s.RecordExchange(ctx, Exchange{
		Role: "qa", Model: "gpt-4o",
		Prompt: "test it", Reply: "tested", TotalTokens: 20,
	}))

	all, err := s.RecentExchanges(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "qa", all[0].Role, "newest first")
	assert.Equal(t, "coder", all[1].Role)
	assert.Equal(t, 30, all[1].TotalTokens)

	qa, err := s.RecentExchanges(ctx, "qa", 10)
	require.NoError(t, err)
	require.Len(t, qa, 1)
	assert.Equal(t, "tested", qa[0].Reply)
}

func TestRecordRun_LinksExchanges(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordRun(ctx, Run{
		RunID: "run-1", Workflow: "feature", Status: "completed",
		StepsCompleted: 4, Duration: 1500 * time.Millisecond,
	}))
	require.NoError(t, s.RecordExchange(ctx, Exchange{
		RunID: "run-1", Role: "ba", Model: "gemini-1.5-pro",
		Prompt: "analyze", Reply: "stories", TotalTokens: 10,
	}))

	runs, err := s.RecentRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "feature", runs[0].Workflow)
	assert.Equal(t, 4, runs[0].StepsCompleted)
	assert.Equal(t, 1500*time.Millisecond, runs[0].Duration)

	exs, err := s.RecentExchanges(ctx, "ba", 10)
	require.NoError(t, err)
	require.Len(t, exs, 1)
	assert.Equal(t, "run-1", exs[0].RunID)
}

func TestRecordInput(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.RecordInput(context.Background(), "@team hello"))
}
