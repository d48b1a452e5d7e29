package constants

// Section identifiers as they appear at the top level of fabric.yaml
const (
	SectionPools            = "pools"
	SectionVLANs            = "vlans"
	SectionPolicies         = "policies"
	SectionPortRoles        = "portRoles"
	SectionPortChannels     = "portChannels"
	SectionVNICTemplates    = "vnicTemplates"
	SectionVHBATemplates    = "vhbaTemplates"
	SectionBootPolicies     = "bootPolicies"
	SectionProfileTemplates = "profileTemplates"
	SectionProfiles         = "profiles"
)

// SectionOrder is the fixed dependency order for the apply phase:
// pools and networks before templates, templates before boot policies
// and profile templates, profile templates before profile instances.
var SectionOrder = []string{
	SectionPools,
	SectionVLANs,
	SectionPolicies,
	SectionPortRoles,
	SectionPortChannels,
	SectionVNICTemplates,
	SectionVHBATemplates,
	SectionBootPolicies,
	SectionProfileTemplates,
	SectionProfiles,
}

// Fabric identifiers
const (
	FabricA = "A"
	FabricB = "B"
)

var Fabrics = []string{FabricA, FabricB}

// Organization distinguished names
const (
	RootOrgDN   = "org-root"
	RootOrgName = "root"
)

// Physical port bounds per module
const (
	Module1MaxPort = 32
	Module2MaxPort = 16
)

// Remote API endpoints (one per object kind)
const (
	EndpointLogin            = "login"
	EndpointOrgs             = "orgs"
	EndpointMacPools         = "mac-pools"
	EndpointUUIDPools        = "uuid-pools"
	EndpointWWNNPools        = "wwnn-pools"
	EndpointWWPNPools        = "wwpn-pools"
	EndpointPoolBlocks       = "pool-blocks"
	EndpointVLANs            = "vlans"
	EndpointPolicies         = "policies"
	EndpointPowerCaps        = "power-caps"
	EndpointServerPorts      = "server-ports"
	EndpointUplinkPorts      = "uplink-ports"
	EndpointAppliancePorts   = "appliance-ports"
	EndpointFcoePorts        = "fcoe-ports"
	EndpointPortChannels     = "port-channels"
	EndpointChannelMembers   = "port-channel-members"
	EndpointVNICTemplates    = "vnic-templates"
	EndpointVHBATemplates    = "vhba-templates"
	EndpointBootPolicies     = "boot-policies"
	EndpointBootDevices      = "boot-devices"
	EndpointSanPaths         = "san-paths"
	EndpointProfileTemplates = "profile-templates"
	EndpointProfileVNICs     = "profile-vnics"
	EndpointProfileVHBAs     = "profile-vhbas"
	EndpointInstances        = "profile-instances"
)

// VLAN tag bounds
const (
	MinVLANTag = 1
	MaxVLANTag = 4095
)

// MTU values accepted on interface templates
var ValidMTUs = []string{"1500", "9000"}

// Power priority bounds and the uncapped sentinel
const (
	MinPowerPriority = 1
	MaxPowerPriority = 10
	PowerNoCap       = "no-cap"
)
