// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package discovery

import (
	"bytes"
	"context"
	"errors"
	"net"
	"sync"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

// AddressFunc returns the address to advertise. An empty value suppresses
// the reply.
type AddressFunc func() string

// Responder answers discovery probes on a UDP socket.
type Responder struct {
	conn    net.PacketConn
	magic   []byte
	address AddressFunc
	logger  *logger.Logger

	closeOnce sync.Once
	closeErr  error
	done      chan struct{}
}

// StartResponder binds addr (for example ":8888") and starts answering.
// The returned handle must be closed by the caller.
func StartResponder(ctx context.Context, addr, magic string, address AddressFunc, log *logger.Logger) (*Responder, error) {
	var lc net.ListenConfig
	conn, err := lc.ListenPacket(ctx, "udp4", addr)
	if err != nil {
		log.Err(err).Str("func", "StartResponder").Str("addr", addr).Msg("error binding discovery socket")
		return nil, err
	}

	r := &Responder{
		conn:    conn,
		magic:   []byte(magic),
		address: address,
		logger:  log,
		done:    make(chan struct{}),
	}
	go r.serve()

	log.Info().Str("func", "StartResponder").Str("addr", conn.LocalAddr().String()).Msg("discovery responder started")
	return r, nil
}

// Addr returns the bound socket address.
func (r *Responder) Addr() net.Addr {
	return r.conn.LocalAddr()
}

// Close stops the responder and waits for the read loop to exit.
func (r *Responder) Close() error {
	r.closeOnce.Do(func() {
		r.closeErr = r.conn.Close()
		<-r.done
	})
	return r.closeErr
}

func (r *Responder) serve() {
	defer close(r.done)

	buf := make([]byte, 512)
	for {
		n, peer, err := r.conn.ReadFrom(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			r.logger.Warn().Err(err).Str("func", "*Responder.serve").Msg("error reading probe")
			continue
		}

		if !bytes.Equal(bytes.TrimSpace(buf[:n]), r.magic) {
			continue
		}

		reply := r.address()
		if reply == "" {
			continue
		}
		if _, err = r.conn.WriteTo([]byte(reply), peer); err != nil {
			r.logger.Warn().Err(err).Str("func", "*Responder.serve").Str("peer", peer.String()).Msg("error answering probe")
			continue
		}
		r.logger.Debug().Str("func", "*Responder.serve").Str("peer", peer.String()).Str("address", reply).Msg("probe answered")
	}
}
