package models

// FabricAffinity scopes a VLAN to one or both fabric interconnects
type FabricAffinity string

const (
	// AffinityCommon is one segment shared by both fabrics with a single tag
	AffinityCommon FabricAffinity = "common"
	// AffinityDiff is one segment per fabric, each with its own tag
	AffinityDiff FabricAffinity = "diff"
	// AffinityFabA / AffinityFabB pin the segment to a single fabric
	AffinityFabA FabricAffinity = "fabA"
	AffinityFabB FabricAffinity = "fabB"
)

// FabricAffinities lists every valid affinity value
var FabricAffinities = []string{
	string(AffinityCommon), string(AffinityDiff), string(AffinityFabA), string(AffinityFabB),
}

// VLAN represents a named, tagged network segment
type VLAN struct {
	Name       string
	Affinity   FabricAffinity
	TagA       int
	TagB       int
	DefaultNet bool
}
