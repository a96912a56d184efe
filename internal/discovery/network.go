// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package discovery

import (
	"net"
	"strconv"

	"github.com/MKhiriev/go-chain-keeper/internal/apperrors"
)

// routeProbeAddress is only used to pick the outbound interface. Dialing UDP
// sends no packets.
const routeProbeAddress = "8.8.8.8:80"

// LocalIP returns the IPv4 address of the interface that routes to the
// public internet.
func LocalIP() (net.IP, error) {
	conn, err := net.Dial("udp4", routeProbeAddress)
	if err != nil {
		return nil, apperrors.SyncNetwork(apperrors.CodeConnect, "resolve local address", err)
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok || addr.IP.To4() == nil {
		return nil, apperrors.SyncNetwork(apperrors.CodeConnect, "local address is not IPv4", nil)
	}
	return addr.IP.To4(), nil
}

// Candidates lists hosts .2 through .254 of the /24 containing ip,
// excluding ip itself. A non-IPv4 address yields no candidates.
func Candidates(ip net.IP) []string {
	v4 := ip.To4()
	if v4 == nil {
		return nil
	}

	out := make([]string, 0, 253)
	for i := 2; i <= 254; i++ {
		if byte(i) == v4[3] {
			continue
		}
		out = append(out, net.IPv4(v4[0], v4[1], v4[2], byte(i)).String())
	}
	return out
}

// LocalCandidates resolves the local address and returns its candidates.
func LocalCandidates() ([]string, error) {
	ip, err := LocalIP()
	if err != nil {
		return nil, err
	}
	return Candidates(ip), nil
}

// JoinHostPort formats host and port as an advertised address.
func JoinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
