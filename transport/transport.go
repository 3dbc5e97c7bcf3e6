// The Licensed Work is (c) 2024 Crossmesh
// SPDX-License-Identifier: LGPL-3.0-only

// Package transport is the delivery side of the attested-message boundary.
// It accepts envelopes that already passed off-chain attestation
// verification upstream, filters replays against the nonce store and hands
// the rest to the spoke listener.
package transport

import (
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/crossmesh/spoke-relayer/chains/spoke/message"
	"github.com/crossmesh/spoke-relayer/store"
)

type NonceStatuser interface {
	NonceStatus(sourceDomain uint32, nonce uint64) (store.NonceStatus, error)
}

type HTTPTransport struct {
	log     zerolog.Logger
	nonces  NonceStatuser
	msgChan chan [][]byte
}

func NewHTTPTransport(logC zerolog.Context, nonces NonceStatuser, msgChan chan [][]byte) *HTTPTransport {
	return &HTTPTransport{
		log:     logC.Logger(),
		nonces:  nonces,
		msgChan: msgChan,
	}
}

// Start serves the message intake endpoint on the provided port until the
// listener fails.
func (t *HTTPTransport) Start(port uint16) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/messages", t.handleMessage)

	t.log.Info().Msgf("starting admin message intake on port %d", port)
	_ = http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}

func (t *HTTPTransport) handleMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	m, err := message.ParseMessage(raw)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	status, err := t.nonces.NonceStatus(m.SourceDomain, m.Nonce)
	if err != nil {
		t.log.Error().Err(err).Msg("Failed checking nonce status")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if status == store.ConsumedNonce {
		t.log.Debug().
			Uint32("sourceDomain", m.SourceDomain).
			Uint64("nonce", m.Nonce).
			Msg("Dropping replayed admin message")
		w.WriteHeader(http.StatusConflict)
		return
	}

	t.msgChan <- [][]byte{raw}
	w.WriteHeader(http.StatusAccepted)
}
