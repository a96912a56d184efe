// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package discovery

import (
	"context"
	"net"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

//go:generate mockgen -source=pinger.go -destination=../mock/pinger_mock.go -package=mock

// Pinger reports whether a host answers.
type Pinger interface {
	Ping(ctx context.Context, host string) bool
}

// icmpNetworks are tried in order: the unprivileged datagram socket first,
// then the raw socket that needs CAP_NET_RAW.
var icmpNetworks = []string{"udp4", "ip4:icmp"}

type icmpPinger struct {
	network string
	timeout time.Duration
	seq     atomic.Uint32
}

// NewPinger returns an ICMP echo [Pinger]. When no ICMP socket can be
// opened on this host every candidate is treated as reachable, so that the
// UDP probe decides.
func NewPinger(timeout time.Duration, log *logger.Logger) Pinger {
	for _, network := range icmpNetworks {
		conn, err := icmp.ListenPacket(network, "0.0.0.0")
		if err != nil {
			log.Debug().Err(err).Str("func", "NewPinger").Str("network", network).Msg("icmp socket unavailable")
			continue
		}
		conn.Close()
		return &icmpPinger{network: network, timeout: timeout}
	}

	log.Warn().Str("func", "NewPinger").Msg("no icmp socket available, skipping reachability checks")
	return NopPinger{}
}

// Ping sends one echo request and waits for the matching reply.
func (p *icmpPinger) Ping(ctx context.Context, host string) bool {
	ip := net.ParseIP(host).To4()
	if ip == nil {
		return false
	}

	conn, err := icmp.ListenPacket(p.network, "0.0.0.0")
	if err != nil {
		return false
	}
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	id := os.Getpid() & 0xffff
	seq := int(p.seq.Add(1) & 0xffff)
	msg := icmp.Message{
		Type: ipv4.ICMPTypeEcho,
		Code: 0,
		Body: &icmp.Echo{ID: id, Seq: seq, Data: []byte("chainkeeper")},
	}
	wire, err := msg.Marshal(nil)
	if err != nil {
		return false
	}

	var dst net.Addr = &net.IPAddr{IP: ip}
	if p.network == "udp4" {
		dst = &net.UDPAddr{IP: ip}
	}

	deadline := time.Now().Add(p.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err = conn.SetDeadline(deadline); err != nil {
		return false
	}

	if _, err = conn.WriteTo(wire, dst); err != nil {
		return false
	}

	buf := make([]byte, 1500)
	for {
		n, peer, err := conn.ReadFrom(buf)
		if err != nil {
			return false
		}
		if !samePeer(peer, ip) {
			continue
		}

		reply, err := icmp.ParseMessage(ipv4.ICMPTypeEchoReply.Protocol(), buf[:n])
		if err != nil || reply.Type != ipv4.ICMPTypeEchoReply {
			continue
		}
		if echo, ok := reply.Body.(*icmp.Echo); ok && echo.Seq == seq {
			return true
		}
	}
}

func samePeer(addr net.Addr, ip net.IP) bool {
	switch a := addr.(type) {
	case *net.UDPAddr:
		return a.IP.Equal(ip)
	case *net.IPAddr:
		return a.IP.Equal(ip)
	default:
		return false
	}
}

// NopPinger treats every host as reachable.
type NopPinger struct{}

// Ping implements [Pinger].
func (NopPinger) Ping(context.Context, string) bool { return true }
