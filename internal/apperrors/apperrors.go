// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apperrors defines the closed error taxonomy shared by every layer
// of the sync subsystem.
//
// Errors are classified by [Kind] and refined by a [Code]. Matching is
// structural: errors.Is(err, target) is true when target is an *Error whose
// Kind equals the Kind of some *Error in err's chain and whose Code is empty
// or equal. Two independently constructed *Error values therefore match
// without sharing identity.
package apperrors

import (
	"errors"
	"strings"
)

// Kind is the top-level error class.
type Kind int

const (
	// KindUnknown is reported by KindOf for errors outside the taxonomy.
	KindUnknown Kind = iota
	// KindCrypto covers auth-tag failures, malformed key material and
	// unsupported cipher parameters. Never recoverable.
	KindCrypto
	// KindProtocol covers malformed frames and unknown routes.
	KindProtocol
	// KindSyncNetwork covers connect, timeout and read/write failures.
	// Callers may retry or treat the server as unavailable.
	KindSyncNetwork
	// KindStorage covers failures reported by the Storage collaborator.
	KindStorage
)

var kindNames = map[Kind]string{
	KindUnknown:     "unknown",
	KindCrypto:      "crypto",
	KindProtocol:    "protocol",
	KindSyncNetwork: "sync_network",
	KindStorage:     "storage",
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// ParseKind maps a wire name back to a Kind. Unrecognized names yield
// KindUnknown.
func ParseKind(s string) Kind {
	for k, name := range kindNames {
		if name == s {
			return k
		}
	}
	return KindUnknown
}

// Code refines a Kind.
type Code string

const (
	CodeAuthFailed            Code = "auth_failed"
	CodeMalformedInput        Code = "malformed_input"
	CodeUnsupportedParameters Code = "unsupported_parameters"

	CodeUnknownRoute   Code = "unknown_route"
	CodeMalformedFrame Code = "malformed_frame"
	CodeTruncatedFrame Code = "truncated_frame"
	CodeFrameTooLarge  Code = "frame_too_large"
	CodeBadRequest     Code = "bad_request"

	CodeConnect        Code = "connect"
	CodeTimeout        Code = "timeout"
	CodeIO             Code = "io"
	CodeServerNotFound Code = "server_not_found"

	CodeNotFound      Code = "not_found"
	CodeAlreadyExists Code = "already_exists"
	CodeQuery         Code = "query"
)

// Error is the single concrete error type of the taxonomy.
type Error struct {
	Kind Kind
	Code Code
	// Msg is a human-readable description.
	Msg string
	// Err is the optional underlying cause.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Code != "" {
		b.WriteString("/")
		b.WriteString(string(e.Code))
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports structural equality with target: same Kind and, when the
// target carries a Code, the same Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

// New constructs an *Error without a cause.
func New(kind Kind, code Code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Msg: msg}
}

// Wrap constructs an *Error around err.
func Wrap(kind Kind, code Code, msg string, err error) *Error {
	return &Error{Kind: kind, Code: code, Msg: msg, Err: err}
}

// Crypto is a shorthand for Wrap(KindCrypto, ...).
func Crypto(code Code, msg string, err error) *Error {
	return Wrap(KindCrypto, code, msg, err)
}

// Protocol is a shorthand for Wrap(KindProtocol, ...).
func Protocol(code Code, msg string, err error) *Error {
	return Wrap(KindProtocol, code, msg, err)
}

// SyncNetwork is a shorthand for Wrap(KindSyncNetwork, ...).
func SyncNetwork(code Code, msg string, err error) *Error {
	return Wrap(KindSyncNetwork, code, msg, err)
}

// Storage is a shorthand for Wrap(KindStorage, ...).
func Storage(code Code, msg string, err error) *Error {
	return Wrap(KindStorage, code, msg, err)
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// CodeOf returns the Code of the first *Error in err's chain.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsKind reports whether err's chain contains an *Error of kind k.
func IsKind(err error, k Kind) bool {
	return errors.Is(err, &Error{Kind: k})
}

// Match targets for errors.Is. They carry no message and match any error
// of the same kind and code.
var (
	ErrCrypto      = &Error{Kind: KindCrypto}
	ErrAuthFailed  = &Error{Kind: KindCrypto, Code: CodeAuthFailed}
	ErrMalformed   = &Error{Kind: KindCrypto, Code: CodeMalformedInput}
	ErrProtocol    = &Error{Kind: KindProtocol}
	ErrSyncNetwork = &Error{Kind: KindSyncNetwork}
	ErrStorage     = &Error{Kind: KindStorage}
	ErrNotFound    = &Error{Kind: KindStorage, Code: CodeNotFound}
	ErrExists      = &Error{Kind: KindStorage, Code: CodeAlreadyExists}
)
