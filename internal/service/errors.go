// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrLinkNotInChain        = errors.New("link does not belong to chain")
	ErrChainLocked           = errors.New("chain is not unlocked")
	ErrForeignLink           = errors.New("link references another chain")
)

// serverNotFound is returned when neither a configured address nor
// discovery yields a sync server.
func serverNotFound(err error) error {
	return apperrors.SyncNetwork(apperrors.CodeServerNotFound, "no sync server found", err)
}

// invalid wraps a validator error as Protocol/bad_request.
func invalid(msg string, err error) error {
	return apperrors.Protocol(apperrors.CodeBadRequest, msg, err)
}
