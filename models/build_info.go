// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BuildInfo carries build-time metadata injected by linker flags.
// It is printed on startup and served by the diagnostics endpoint.
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewBuildInfo fills empty values with "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// Status is the payload of the diagnostics status endpoint.
type Status struct {
	// SyncAddress is the host:port the sync listener is bound to, empty
	// while no address has been resolved.
	SyncAddress string `json:"sync_address"`
	// DiscoveryPort is the UDP port the responder answers on.
	DiscoveryPort int `json:"discovery_port"`
	// Chains is the number of chains in storage.
	Chains int `json:"chains"`
}
