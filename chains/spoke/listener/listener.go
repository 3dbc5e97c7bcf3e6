// The Licensed Work is (c) 2024 Crossmesh
// SPDX-License-Identifier: LGPL-3.0-only

package listener

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/crossmesh/spoke-relayer/chains/spoke/executor"
	"github.com/crossmesh/spoke-relayer/chains/spoke/handler"
	"github.com/crossmesh/spoke-relayer/chains/spoke/message"
)

// MessageDispatcher is the authenticated entry point of the spoke core.
type MessageDispatcher interface {
	Receive(m *message.Message) error
}

// NonceAcknowledger marks a (sourceDomain, nonce) pair consumed in the
// transport's replay bookkeeping once its message fully dispatched.
type NonceAcknowledger interface {
	MarkNonceConsumed(sourceDomain uint32, nonce uint64) error
}

type AdminMetrics interface {
	TrackMessageReceived(ctx context.Context)
	TrackMessageRejected(ctx context.Context, reason string)
	TrackCommandExecuted(ctx context.Context)
}

// AdminMessageHandler drains attested admin envelopes from the transport
// channel and processes them strictly one at a time. A rejected message is
// logged and dropped without acknowledgement; recovery is the remote admin
// resending a corrected message.
type AdminMessageHandler struct {
	log          zerolog.Logger
	dispatcher   MessageDispatcher
	acknowledger NonceAcknowledger
	metrics      AdminMetrics
	msgChan      chan [][]byte
}

func NewAdminMessageHandler(
	logC zerolog.Context,
	dispatcher MessageDispatcher,
	acknowledger NonceAcknowledger,
	metrics AdminMetrics,
	msgChan chan [][]byte,
) *AdminMessageHandler {
	return &AdminMessageHandler{
		log:          logC.Logger(),
		dispatcher:   dispatcher,
		acknowledger: acknowledger,
		metrics:      metrics,
		msgChan:      msgChan,
	}
}

// Listen processes message batches until the context is canceled. Each
// envelope runs to completion or rejection before the next one starts.
func (h *AdminMessageHandler) Listen(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case batch := <-h.msgChan:
			for _, raw := range batch {
				_ = h.HandleMessage(ctx, raw)
			}
		}
	}
}

// HandleMessage processes one raw attested envelope and returns the typed
// outcome surfaced to the transport.
func (h *AdminMessageHandler) HandleMessage(ctx context.Context, raw []byte) error {
	h.metrics.TrackMessageReceived(ctx)

	m, err := message.ParseMessage(raw)
	if err != nil {
		h.metrics.TrackMessageRejected(ctx, rejectionReason(err))
		h.log.Warn().Err(err).Msg("Rejected admin message")
		return err
	}

	err = h.dispatcher.Receive(m)
	if err != nil {
		h.metrics.TrackMessageRejected(ctx, rejectionReason(err))
		h.log.Warn().
			Err(err).
			Uint32("sourceDomain", m.SourceDomain).
			Uint64("nonce", m.Nonce).
			Str("sender", m.Sender.String()).
			Msg("Rejected admin message")
		return err
	}

	err = h.acknowledger.MarkNonceConsumed(m.SourceDomain, m.Nonce)
	if err != nil {
		h.log.Error().
			Err(err).
			Uint32("sourceDomain", m.SourceDomain).
			Uint64("nonce", m.Nonce).
			Msg("Failed acknowledging admin message")
		return err
	}

	h.metrics.TrackCommandExecuted(ctx)
	h.log.Info().
		Uint32("sourceDomain", m.SourceDomain).
		Uint64("nonce", m.Nonce).
		Msg("Dispatched admin message")
	return nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, message.ErrMalformedHeader):
		return "malformedHeader"
	case errors.Is(err, handler.ErrMalformedBody):
		return "malformedBody"
	case errors.Is(err, handler.ErrUnsupportedCommand):
		return "unsupportedCommand"
	case errors.Is(err, executor.ErrInvalidRemoteDomain):
		return "invalidRemoteDomain"
	case errors.Is(err, executor.ErrInvalidDestinationDomain):
		return "invalidDestinationDomain"
	case errors.Is(err, executor.ErrInvalidRemoteSender):
		return "invalidRemoteSender"
	default:
		return "internal"
	}
}
