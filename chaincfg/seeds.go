// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Reef Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"net"
	"strconv"

	"github.com/btcsuite/btcd/wire"
)

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Name is a short label for the seed.
	Name string

	// Host defines the hostname or address of the seed.
	Host string
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// FixedSeed is a compiled-in peer address used when DNS seeding yields
// nothing.  IPv4 peers are stored as IPv4-mapped IPv6 addresses.
type FixedSeed struct {
	IP   [net.IPv6len]byte
	Port uint16
}

// newFixedSeed converts the passed IP literal into a FixedSeed.  It panics on
// an invalid literal since it must only be called with hard-coded addresses.
func newFixedSeed(ip string, port uint16) FixedSeed {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		panic("invalid fixed seed address " + ip)
	}
	seed := FixedSeed{Port: port}
	copy(seed.IP[:], parsed.To16())
	return seed
}

// String returns the seed in host:port form.
func (s FixedSeed) String() string {
	return net.JoinHostPort(net.IP(s.IP[:]).String(),
		strconv.Itoa(int(s.Port)))
}

// NetAddress returns the seed as a wire network address advertising the
// passed services.
func (s FixedSeed) NetAddress(services wire.ServiceFlag) *wire.NetAddress {
	ip := make(net.IP, net.IPv6len)
	copy(ip, s.IP[:])
	return wire.NewNetAddressIPPort(ip, s.Port, services)
}
