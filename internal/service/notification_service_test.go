package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/buddy-service/internal/config"
	"github.com/spec-kit/buddy-service/internal/domain"
	"github.com/spec-kit/buddy-service/internal/events"
)

func TestNotificationServiceLogsRuns(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	dispatcher := events.NewInMemoryDispatcher()
	NewNotificationService(dispatcher, zap.New(core), config.NotificationConfig{WebhookURL: "https://hooks.example.com/buddy"}).RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventMatchesComputed,
		RunID:   "run-1",
		Payload: events.MatchesComputedPayload{Summary: domain.MatchSummary{Pairs: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("MatchesComputed").Len())
	webhook := logs.FilterMessage("sendWebhookNotificationStub").All()
	require.Len(t, webhook, 1)
	assert.Equal(t, "run-1", webhook[0].ContextMap()["run_id"])
}

func TestNotificationServiceSkipsWebhookWithoutURL(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	dispatcher := events.NewInMemoryDispatcher()
	NewNotificationService(dispatcher, zap.New(core), config.NotificationConfig{}).RegisterHandlers()

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventMatchesComputed}))
	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventRosterRejected}))

	assert.Equal(t, 0, logs.FilterMessage("sendWebhookNotificationStub").Len())
	assert.Equal(t, 1, logs.FilterMessage("RosterRejected").Len())
}
