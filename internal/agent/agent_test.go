package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claidev/clai/internal/config"
	"github.com/claidev/clai/internal/llm"
	"github.com/claidev/clai/internal/team"
)

func testRegistry(t *testing.T) *team.Registry {
	t.Helper()
	reg, err := team.NewRegistry(config.Settings{})
	require.NoError(t, err)
	return reg
}

func mockProviderFunc(mock llm.Provider) ProviderFunc {
	return func(ctx context.Context, cfg team.Config) (llm.Provider, error) {
		return mock, nil
	}
}

func TestAgentSend_AppendsHistoryOnSuccess(t *testing.T) {
	mock := &llm.MockProvider{Response: "ok"}
	cfg, err := testRegistry(t).Lookup(team.Coder)
	require.NoError(t, err)

	a := New(cfg, mock)
	resp, err := a.Send(context.Background(), "write a function", true)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)
	assert.Equal(t, 2, a.HistoryLen())

	hist := a.History()
	assert.Equal(t, llm.RoleUser, hist[0].Role)
	assert.Equal(t, "write a function", hist[0].Content)
	assert.Equal(t, llm.RoleAssistant, hist[1].Role)
}

func TestAgentSend_FailureLeavesHistoryUnchanged(t *testing.T) {
	mock := &llm.MockProvider{Err: errors.New("boom")}
	cfg, err := testRegistry(t).Lookup(team.QA)
	require.NoError(t, err)

	a := New(cfg, mock)
	_, err = a.Send(context.Background(), "test this", true)
	require.Error(t, err)
	assert.Equal(t, 0, a.HistoryLen())
}

func TestAgentSend_IncludeHistoryControlsContext(t *testing.T) {
	mock := &llm.MockProvider{Response: "ok"}
	cfg, err := testRegistry(t).Lookup(team.Coder)
	require.NoError(t, err)

	a := New(cfg, mock)
	_, err = a.Send(context.Background(), "first", true)
	require.NoError(t, err)

	_, err = a.Send(context.Background(), "second", true)
	require.NoError(t, err)
	require.Len(t, mock.Requests, 2)
	assert.Len(t, mock.Requests[1].Messages, 3, "prior turns plus new prompt")

	_, err = a.Send(context.Background(), "third", false)
	require.NoError(t, err)
	assert.Len(t, mock.Requests[2].Messages, 1, "history excluded")
}

func TestFactoryGet_CachesPerRole(t *testing.T) {
	mock := &llm.MockProvider{Response: "ok"}
	f := NewFactory(testRegistry(t), mockProviderFunc(mock))

	a1, err := f.Get(context.Background(), team.Coder)
	require.NoError(t, err)
	a2, err := f.Get(context.Background(), team.Coder)
	require.NoError(t, err)
	assert.Same(t, a1, a2)

	b, err := f.Get(context.Background(), team.QA)
	require.NoError(t, err)
	assert.NotSame(t, a1, b)
}

func TestFactoryGet_SharesProviderPerBackend(t *testing.T) {
	var calls int
	f := NewFactory(testRegistry(t), func(ctx context.Context, cfg team.Config) (llm.Provider, error) {
		calls++
		return &llm.MockProvider{Response: "ok"}, nil
	})

	// senior_dev and coder both use the anthropic backend
	_, err := f.Get(context.Background(), team.SeniorDev)
	require.NoError(t, err)
	_, err = f.Get(context.Background(), team.Coder)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestFactoryGet_UnknownRole(t *testing.T) {
	f := NewFactory(testRegistry(t), mockProviderFunc(&llm.MockProvider{}))
	_, err := f.Get(context.Background(), team.Role("plumber"))
	assert.Error(t, err)
}

func TestFactoryClearHistories(t *testing.T) {
	mock := &llm.MockProvider{Response: "ok"}
	f := NewFactory(testRegistry(t), mockProviderFunc(mock))

	a, err := f.Get(context.Background(), team.Coder)
	require.NoError(t, err)
	_, err = a.Send(context.Background(), "hi", true)
	require.NoError(t, err)
	require.Equal(t, 2, a.HistoryLen())

	f.ClearHistories()
	assert.Equal(t, 0, a.HistoryLen())
}

func TestFactoryActive_RegistryOrder(t *testing.T) {
	mock := &llm.MockProvider{Response: "ok"}
	f := NewFactory(testRegistry(t), mockProviderFunc(mock))

	_, err := f.Get(context.Background(), team.QA)
	require.NoError(t, err)
	_, err = f.Get(context.Background(), team.SeniorDev)
	require.NoError(t, err)

	active := f.Active()
	require.Len(t, active, 2)
	assert.Equal(t, team.SeniorDev, active[0].Config().Role)
	assert.Equal(t, team.QA, active[1].Config().Role)
}
