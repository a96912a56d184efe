// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/protocol"
)

const defaultConnTimeout = 5 * time.Second

// Listener is a running sync listener. It is created by [Listen] and must be
// released with Stop.
type Listener struct {
	ln          net.Listener
	handler     RequestHandler
	connTimeout time.Duration
	logger      *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	stopOnce sync.Once
}

// Listen binds addr and starts the accept loop. Request contexts derive from
// ctx; cancelling it does not close the socket, Stop does.
func Listen(ctx context.Context, addr string, handler RequestHandler, connTimeout time.Duration, log *logger.Logger) (*Listener, error) {
	if handler == nil {
		return nil, errNoHandler
	}
	if connTimeout <= 0 {
		connTimeout = defaultConnTimeout
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, apperrors.SyncNetwork(apperrors.CodeConnect, fmt.Sprintf("listen %s", addr), err)
	}

	lctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	l := &Listener{
		ln:          ln,
		handler:     handler,
		connTimeout: connTimeout,
		logger:      log,
		ctx:         lctx,
		cancel:      cancel,
	}

	l.wg.Add(1)
	go l.acceptLoop()

	log.Info().Str("func", "Listen").Str("addr", l.Addr()).Msg("sync listener started")
	return l, nil
}

// Addr returns the bound host:port.
func (l *Listener) Addr() string {
	return l.ln.Addr().String()
}

// Stop closes the socket and waits for the accept loop and every in-flight
// connection to finish. Repeated calls are no-ops.
func (l *Listener) Stop() {
	l.stopOnce.Do(func() {
		l.cancel()
		if err := l.ln.Close(); err != nil {
			l.logger.Warn().Err(err).Str("func", "*Listener.Stop").Msg("error closing listener")
		}
		l.wg.Wait()
		l.logger.Info().Str("func", "*Listener.Stop").Str("addr", l.Addr()).Msg("sync listener stopped")
	})
}

func (l *Listener) acceptLoop() {
	defer l.wg.Done()

	var backoff time.Duration
	for {
		conn, err := l.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || l.ctx.Err() != nil {
				return
			}

			// transient accept failure, e.g. too many open files
			backoff = nextBackoff(backoff)
			l.logger.Warn().Err(err).Str("func", "*Listener.acceptLoop").Dur("retry_in", backoff).Msg("accept failed")
			select {
			case <-time.After(backoff):
				continue
			case <-l.ctx.Done():
				return
			}
		}
		backoff = 0

		l.wg.Add(1)
		go l.serveConn(conn)
	}
}

func nextBackoff(d time.Duration) time.Duration {
	if d == 0 {
		return 5 * time.Millisecond
	}
	if d *= 2; d > time.Second {
		d = time.Second
	}
	return d
}

// serveConn reads one request, dispatches it and writes one reply.
func (l *Listener) serveConn(conn net.Conn) {
	defer l.wg.Done()
	defer conn.Close()

	ctx, log, _ := l.logger.WithTraceID(l.ctx)
	log = &logger.Logger{Logger: log.With().Str("remote", conn.RemoteAddr().String()).Logger()}

	defer func() {
		if p := recover(); p != nil {
			log.Error().Str("func", "*Listener.serveConn").Interface("panic", p).Msg("recovered")
			err := apperrors.Protocol(apperrors.CodeBadRequest, "internal error", errListenerPanics)
			_ = protocol.WriteFrame(conn, protocol.ErrorEnvelope(err))
		}
	}()

	if err := conn.SetDeadline(time.Now().Add(l.connTimeout)); err != nil {
		log.Err(err).Str("func", "*Listener.serveConn").Msg("error setting deadline")
		return
	}

	// Stop must not wait for a peer that never sends its request. Once the
	// frame is in, the request drains normally.
	unwatch := context.AfterFunc(l.ctx, func() { _ = conn.Close() })
	req, err := protocol.ReadFrame(bufio.NewReader(conn))
	unwatch()
	if err != nil {
		if l.ctx.Err() != nil {
			log.Debug().Str("func", "*Listener.serveConn").Msg("listener stopped before request")
			return
		}
		if errors.Is(err, io.EOF) {
			log.Debug().Str("func", "*Listener.serveConn").Msg("connection closed before request")
			return
		}
		log.Warn().Err(err).Str("func", "*Listener.serveConn").Msg("error reading request")
		if apperrors.IsKind(err, apperrors.KindProtocol) {
			_ = protocol.WriteFrame(conn, protocol.ErrorEnvelope(err))
		}
		return
	}

	start := time.Now()
	reply := l.handler.Handle(ctx, req)

	if err = protocol.WriteFrame(conn, reply); err != nil {
		log.Warn().Err(err).Str("func", "*Listener.serveConn").Msg("error writing reply")
		return
	}

	log.Info().
		Str("route", req.Route.String()).
		Str("reply", reply.Route.String()).
		Dur("duration", time.Since(start)).
		Msg("request served")
}
