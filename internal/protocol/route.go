// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package protocol implements the sync wire format: one JSON envelope per
// line, {"route": "<Route>", "data": <payload|null>}, terminated by '\n'.
//
// A connection carries exactly one request frame and one reply frame. The
// reply uses the request route on success and [RouteError] on failure.
package protocol

// Route names a request kind. The set is closed.
type Route string

const (
	RouteChainSync     Route = "ChainSync"
	RouteChainLinkSync Route = "ChainLinkSync"
	RouteChainCreate   Route = "ChainCreate"
	RouteChainRead     Route = "ChainRead"
	RouteChainDelete   Route = "ChainDelete"
	RouteLinkCreate    Route = "LinkCreate"
	RouteLinkRead      Route = "LinkRead"
	RouteLinkUpdate    Route = "LinkUpdate"
	RouteLinkDelete    Route = "LinkDelete"

	// RouteError is only ever sent as a reply.
	RouteError Route = "Error"
)

var knownRoutes = map[Route]struct{}{
	RouteChainSync:     {},
	RouteChainLinkSync: {},
	RouteChainCreate:   {},
	RouteChainRead:     {},
	RouteChainDelete:   {},
	RouteLinkCreate:    {},
	RouteLinkRead:      {},
	RouteLinkUpdate:    {},
	RouteLinkDelete:    {},
	RouteError:         {},
}

// Valid reports whether r belongs to the route set.
func (r Route) Valid() bool {
	_, ok := knownRoutes[r]
	return ok
}

// IsRequest reports whether r may be sent by a client.
func (r Route) IsRequest() bool {
	return r.Valid() && r != RouteError
}

// IsMutation reports whether r changes server state and therefore
// requires a key challenge.
func (r Route) IsMutation() bool {
	switch r {
	case RouteChainCreate, RouteChainDelete, RouteLinkCreate, RouteLinkUpdate, RouteLinkDelete:
		return true
	default:
		return false
	}
}

func (r Route) String() string {
	return string(r)
}
