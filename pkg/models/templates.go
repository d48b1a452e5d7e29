package models

// FabricPreferences lists valid fabric failover orders for templates
var FabricPreferences = []string{"A-B", "B-A"}

// VNICTemplate is a reusable network interface definition
type VNICTemplate struct {
	Name       string
	MTU        int
	Fabric     string // preference order, "A-B" or "B-A"
	MacPool    string
	QoS        string
	VLAN       string
	Updating   bool
	NativeVLAN bool
	Org        string
}

// VHBATemplate is a reusable storage interface definition
type VHBATemplate struct {
	Name     string
	Fabric   string // preference order, "A-B" or "B-A"
	WwpnPool string
	QoS      string
	VSAN     string
	Updating bool
	Org      string
}
