// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"bufio"
	"errors"
	"io"
	"net"
	"os"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
)

// MaxFrameSize bounds a single frame, newline included.
const MaxFrameSize = 1 << 20

// WriteFrame encodes env and writes it to w in one call.
func WriteFrame(w io.Writer, env Envelope) error {
	b, err := env.encode()
	if err != nil {
		return err
	}
	if _, err = w.Write(b); err != nil {
		return NetworkError("write frame", err)
	}
	return nil
}

// ReadFrame reads one newline terminated frame from r and decodes it.
//
// A clean EOF before any byte is returned as a SyncNetwork/io error
// wrapping io.EOF. Bytes followed by EOF without a newline are a
// Protocol/truncated_frame error.
func ReadFrame(r *bufio.Reader) (Envelope, error) {
	line, err := readLine(r)
	if err != nil {
		return Envelope{}, err
	}
	return Decode(line)
}

func readLine(r *bufio.Reader) ([]byte, error) {
	var line []byte
	for {
		chunk, err := r.ReadSlice('\n')
		if len(line)+len(chunk) > MaxFrameSize {
			return nil, apperrors.Protocol(apperrors.CodeFrameTooLarge, "frame exceeds 1 MiB", nil)
		}
		line = append(line, chunk...)

		switch {
		case err == nil:
			return line, nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF) && len(line) > 0:
			return nil, apperrors.Protocol(apperrors.CodeTruncatedFrame, "missing newline", io.ErrUnexpectedEOF)
		default:
			return nil, NetworkError("read frame", err)
		}
	}
}

// NetworkError classifies a transport failure as SyncNetwork/timeout or
// SyncNetwork/io.
func NetworkError(msg string, err error) error {
	if isTimeout(err) {
		return apperrors.SyncNetwork(apperrors.CodeTimeout, msg, err)
	}
	return apperrors.SyncNetwork(apperrors.CodeIO, msg, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
