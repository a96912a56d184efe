// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// SyncReport summarizes a reconciliation pass.
type SyncReport struct {
	ChainsCreated int `json:"chains_created"`
	LinksCreated  int `json:"links_created"`
	LinksUpdated  int `json:"links_updated"`
	Unchanged     int `json:"unchanged"`

	// Failures holds one error per entity that could not be applied.
	// A failure never aborts the pass.
	Failures []error `json:"-"`
}

// Merge adds the counters and failures of other to r.
func (r *SyncReport) Merge(other SyncReport) {
	r.ChainsCreated += other.ChainsCreated
	r.LinksCreated += other.LinksCreated
	r.LinksUpdated += other.LinksUpdated
	r.Unchanged += other.Unchanged
	r.Failures = append(r.Failures, other.Failures...)
}

// Changed reports whether the pass created or updated anything.
func (r SyncReport) Changed() bool {
	return r.ChainsCreated+r.LinksCreated+r.LinksUpdated > 0
}

// Err joins all failures into a single error, or returns nil.
func (r SyncReport) Err() error {
	return errors.Join(r.Failures...)
}
