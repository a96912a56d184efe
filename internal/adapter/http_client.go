// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/models"
)

type httpStatusClient struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPStatusClient builds a [StatusClient] for the diagnostics endpoint
// at address ("host:port" or a full URL).
func NewHTTPStatusClient(address string, timeout time.Duration, log *logger.Logger) (StatusClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid status address: %w", err)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpStatusClient{client: cli, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	return strings.TrimRight(raw, "/"), nil
}

func (c *httpStatusClient) Version(ctx context.Context) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (c *httpStatusClient) Status(ctx context.Context) (models.Status, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get("/api/status")
	if err != nil {
		return models.Status{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Status{}, err
	}

	var status models.Status
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return models.Status{}, fmt.Errorf("decode status response: %w", err)
	}
	return status, nil
}
