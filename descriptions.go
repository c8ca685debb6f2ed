// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

// Describable is satisfied by any value C2 can render as a canonical
// extended-JSON projection: server descriptions, topology descriptions,
// and anything else a higher-level package wants to log the same way.
// CanonicalProjection may fail (e.g. a cyclic or unrepresentable
// structure upstream); when it does, [DescriptionRepresentation]
// substitutes the fixed fallback string rather than failing the
// emission (spec §4.2, §7).
type Describable interface {
	CanonicalProjection() (*Document, error)
}

// ServerType enumerates the SDAM server types a [ServerDescription] can report.
type ServerType string

const (
	ServerTypeUnknown       ServerType = "Unknown"
	ServerTypeStandalone    ServerType = "Standalone"
	ServerTypeMongos        ServerType = "Mongos"
	ServerTypePossiblePrimary ServerType = "PossiblePrimary"
	ServerTypeRSPrimary     ServerType = "RSPrimary"
	ServerTypeRSSecondary   ServerType = "RSSecondary"
	ServerTypeRSArbiter     ServerType = "RSArbiter"
	ServerTypeRSOther       ServerType = "RSOther"
	ServerTypeRSGhost       ServerType = "RSGhost"
	ServerTypeLoadBalancer  ServerType = "LoadBalancer"
)

// ServerDescription is the minimal SDAM server-description projection
// this core renders into server description changed/opening/closed
// events.
type ServerDescription struct {
	Address Address
	Type    ServerType
	Error   error
}

var _ Describable = ServerDescription{}

// CanonicalProjection implements [Describable].
func (d ServerDescription) CanonicalProjection() (*Document, error) {
	doc := NewDocument().
		Append("address", StringValue(d.Address.String())).
		Append("type", StringValue(string(d.Type)))
	if d.Error != nil {
		doc.Append("error", StringValue(d.Error.Error()))
	}
	return doc, nil
}

// TopologyType enumerates the SDAM topology types a [TopologyDescription] can report.
type TopologyType string

const (
	TopologyTypeUnknown          TopologyType = "Unknown"
	TopologyTypeSingle           TopologyType = "Single"
	TopologyTypeReplicaSetNoPrimary TopologyType = "ReplicaSetNoPrimary"
	TopologyTypeReplicaSetWithPrimary TopologyType = "ReplicaSetWithPrimary"
	TopologyTypeSharded          TopologyType = "Sharded"
	TopologyTypeLoadBalanced     TopologyType = "LoadBalanced"
)

// TopologyDescription is the minimal SDAM topology-description projection
// this core renders into topology description changed/opening/closed
// events.
type TopologyDescription struct {
	Type    TopologyType
	Servers []ServerDescription
}

var _ Describable = TopologyDescription{}

// CanonicalProjection implements [Describable].
func (d TopologyDescription) CanonicalProjection() (*Document, error) {
	servers := make([]Value, 0, len(d.Servers))
	for _, s := range d.Servers {
		serverDoc, err := s.CanonicalProjection()
		if err != nil {
			return nil, err
		}
		servers = append(servers, DocumentValue(serverDoc))
	}
	doc := NewDocument().
		Append("type", StringValue(string(d.Type))).
		Append("servers", ArrayValue(servers))
	return doc, nil
}

// String renders the address as "host:port", or just the host for UNIX
// domain socket addresses that have no port. Used by
// [ServerDescription.CanonicalProjection].
func (a Address) String() string {
	if a.Port == nil {
		return a.Host
	}
	return a.Host + ":" + uint64ToString(*a.Port)
}
