package models

// PortRole classifies what a physical port is used for
type PortRole string

const (
	RoleUnset     PortRole = "unset"
	RoleServer    PortRole = "server"
	RoleUplink    PortRole = "uplink"
	RoleAppliance PortRole = "appliance"
	RoleFcoe      PortRole = "fcoe"
)

// PortRoles lists every valid port role
var PortRoles = []string{
	string(RoleUnset), string(RoleServer), string(RoleUplink),
	string(RoleAppliance), string(RoleFcoe),
}

// PortModes lists valid switching modes for appliance ports
var PortModes = []string{"trunk", "access"}

// PortRow assigns a role to one physical port on a module.
// VLAN, Native, Mode and QoS only apply when Role is appliance.
type PortRow struct {
	Module int
	Port   int
	Role   PortRole
	VLAN   string
	Native bool
	Mode   string
	QoS    string
}

// PortChannel bundles the same physical port pair on both fabrics
// into one channel per fabric
type PortChannel struct {
	NameA  string
	IDA    int
	NameB  string
	IDB    int
	Module int
	Port1  int
	Port2  int
}

// Name returns the channel name for the given fabric
func (pc *PortChannel) Name(fabric string) string {
	if fabric == "B" {
		return pc.NameB
	}
	return pc.NameA
}

// ID returns the channel id for the given fabric
func (pc *PortChannel) ID(fabric string) int {
	if fabric == "B" {
		return pc.IDB
	}
	return pc.IDA
}
