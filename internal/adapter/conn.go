// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
	"github.com/MKhiriev/go-chain-keeper/internal/protocol"
)

// Dialer opens sync connections.
type Dialer struct {
	DialTimeout    time.Duration
	RequestTimeout time.Duration
}

// Connect dials host. Failures are SyncNetwork/connect, or
// SyncNetwork/timeout when the dial timed out.
func (d Dialer) Connect(ctx context.Context, host string) (*Conn, error) {
	if host == "" {
		return nil, apperrors.SyncNetwork(apperrors.CodeConnect, "connect", ErrEmptyAddress)
	}

	nd := net.Dialer{Timeout: d.DialTimeout}
	c, err := nd.DialContext(ctx, "tcp", host)
	if err != nil {
		code := apperrors.CodeConnect
		var ne net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
			code = apperrors.CodeTimeout
		}
		return nil, apperrors.SyncNetwork(code, fmt.Sprintf("connect %s", host), err)
	}

	return &Conn{conn: c, reader: bufio.NewReader(c), timeout: d.RequestTimeout}, nil
}

// Conn is one sync connection. It carries a single request.
type Conn struct {
	conn    net.Conn
	reader  *bufio.Reader
	timeout time.Duration

	closeOnce sync.Once
}

// RoundTrip writes req and reads the reply. The deadline is the earlier of
// ctx's deadline and the request timeout.
func (c *Conn) RoundTrip(ctx context.Context, req protocol.Envelope) (protocol.Envelope, error) {
	deadline := time.Time{}
	if c.timeout > 0 {
		deadline = time.Now().Add(c.timeout)
	}
	if d, ok := ctx.Deadline(); ok && (deadline.IsZero() || d.Before(deadline)) {
		deadline = d
	}
	if err := c.conn.SetDeadline(deadline); err != nil {
		return protocol.Envelope{}, protocol.NetworkError("set deadline", err)
	}

	stop := context.AfterFunc(ctx, func() {
		// unblock pending I/O
		_ = c.conn.SetDeadline(time.Unix(1, 0))
	})
	defer stop()

	if err := protocol.WriteFrame(c.conn, req); err != nil {
		return protocol.Envelope{}, c.ctxErr(ctx, err)
	}

	reply, err := protocol.ReadFrame(c.reader)
	if err != nil {
		return protocol.Envelope{}, c.ctxErr(ctx, err)
	}
	return reply, nil
}

func (c *Conn) ctxErr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return apperrors.SyncNetwork(apperrors.CodeTimeout, "request cancelled", ctxErr)
	}
	return err
}

// Close closes the connection. Repeated calls are no-ops.
func (c *Conn) Close() {
	c.closeOnce.Do(func() {
		_ = c.conn.Close()
	})
}
