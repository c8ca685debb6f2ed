// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import "strconv"

// Address identifies a server endpoint. Port is optional because UNIX
// domain socket addresses have none (spec §3).
type Address struct {
	Host string
	Port *uint64
}

// NewAddress returns an [Address] with an explicit port.
func NewAddress(host string, port uint64) Address {
	return Address{Host: host, Port: &port}
}

// NewUnixAddress returns an [Address] for a UNIX domain socket, which has
// no port.
func NewUnixAddress(path string) Address {
	return Address{Host: path, Port: nil}
}

// ServiceID is the optional load-balancer service identifier carried by
// some command and pool-cleared events.
type ServiceID = ObjectID

func uint64ToString(v uint64) string {
	return strconv.FormatUint(v, 10)
}
