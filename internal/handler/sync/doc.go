// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sync dispatches decoded sync protocol requests to storage.
//
// Read routes (ChainSync, ChainLinkSync, ChainRead, LinkRead) answer from
// storage directly. Mutation routes validate the entity and then check the
// key challenge: the verifier in the request must equal the verifier stored
// with the owning chain. ChainCreate establishes that verifier.
//
// Every failure is turned into an Error envelope; Handle never returns a
// Go error.
package sync
