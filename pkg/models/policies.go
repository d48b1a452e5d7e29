package models

// PolicyKind identifies a policy family
type PolicyKind string

const (
	PolicyPower       PolicyKind = "power"
	PolicyScrub       PolicyKind = "scrub"
	PolicyMaintenance PolicyKind = "maintenance"
	PolicyDisk        PolicyKind = "disk"
	PolicyBIOS        PolicyKind = "bios"
	PolicyPlacement   PolicyKind = "placement"
)

// PolicyKinds lists every valid policy kind
var PolicyKinds = []string{
	string(PolicyPower), string(PolicyScrub), string(PolicyMaintenance),
	string(PolicyDisk), string(PolicyBIOS), string(PolicyPlacement),
}

// Closed mode sets per policy kind. Power uses a numeric priority or
// the no-cap sentinel instead of a mode from a fixed set.
var (
	ScrubModes = []string{"disk-scrub", "bios-scrub", "all", "none"}
	MaintModes = []string{"immediate", "user-ack", "timer-automatic"}
	DiskModes  = []string{
		"any-configuration", "no-local-storage", "no-raid",
		"raid-mirrored", "raid-striped",
	}
)

// Policy represents a named policy of one of the closed kinds
type Policy struct {
	Kind  PolicyKind
	Name  string
	Mode  string
	Descr string
}
