// The Licensed Work is (c) 2024 Crossmesh
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	api "go.opentelemetry.io/otel/metric"
)

type SpokeMetrics struct {
	meter api.Meter
	opts  api.MeasurementOption

	MessagesReceived api.Int64Counter
	MessagesRejected api.Int64Counter
	CommandsExecuted api.Int64Counter
}

// NewSpokeMetrics creates an instance of metrics
func NewSpokeMetrics(meter api.Meter, env, relayerID string) (*SpokeMetrics, error) {
	opts := api.WithAttributes(
		attribute.String("env", env),
		attribute.String("relayerid", relayerID),
	)

	messagesReceived, err := meter.Int64Counter(
		"relayer.AdminMessagesReceived",
		api.WithDescription("Number of admin messages delivered by the transport"),
	)
	if err != nil {
		return nil, err
	}
	messagesRejected, err := meter.Int64Counter(
		"relayer.AdminMessagesRejected",
		api.WithDescription("Number of admin messages rejected before dispatch"),
	)
	if err != nil {
		return nil, err
	}
	commandsExecuted, err := meter.Int64Counter(
		"relayer.AdminCommandsExecuted",
		api.WithDescription("Number of admin commands applied to spoke state"),
	)
	if err != nil {
		return nil, err
	}

	return &SpokeMetrics{
		meter:            meter,
		opts:             opts,
		MessagesReceived: messagesReceived,
		MessagesRejected: messagesRejected,
		CommandsExecuted: commandsExecuted,
	}, nil
}

func (m *SpokeMetrics) TrackMessageReceived(ctx context.Context) {
	m.MessagesReceived.Add(ctx, 1, m.opts)
}

func (m *SpokeMetrics) TrackMessageRejected(ctx context.Context, reason string) {
	m.MessagesRejected.Add(ctx, 1, m.opts, api.WithAttributes(attribute.String("reason", reason)))
}

func (m *SpokeMetrics) TrackCommandExecuted(ctx context.Context) {
	m.CommandsExecuted.Add(ctx, 1, m.opts)
}
