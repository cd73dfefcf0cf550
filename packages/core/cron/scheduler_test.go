package cron

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunNow(t *testing.T) {
	var ran []string
	boom := errors.New("boom")

	s := NewScheduler(
		Job{Name: "ok", Run: func(ctx context.Context) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			ran = append(ran, "ok")
			return nil
		}},
		Job{Name: "fails", Run: func(context.Context) error { return boom }},
	)

	require.NoError(t, s.RunNow("ok"))
	require.ErrorIs(t, s.RunNow("fails"), boom)
	require.Error(t, s.RunNow("missing"))
	assert.Equal(t, []string{"ok"}, ran)
}

func TestStartRejectsBadSpec(t *testing.T) {
	s := NewScheduler(Job{Name: "bad", Spec: "every tuesday", Run: func(context.Context) error { return nil }})
	require.Error(t, s.Start())
}

func TestStartWithoutSpecs(t *testing.T) {
	s := NewScheduler(Job{Name: "manual", Run: func(context.Context) error { return nil }})
	require.NoError(t, s.Start())
	s.Stop()
}
