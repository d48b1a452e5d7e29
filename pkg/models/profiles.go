package models

// ProfileInterface binds a named interface instance to a template
type ProfileInterface struct {
	Name     string
	Template string
}

// ProfileTemplate bundles policy and identity references with the
// interface instances a derived profile will carry
type ProfileTemplate struct {
	Name         string
	Org          string
	BootPolicy   string
	DiskPolicy   string
	PowerPolicy  string
	ScrubPolicy  string
	MaintPolicy  string
	StatsPolicy  string
	HostFwPolicy string
	UUIDPool     string
	WWNNPool     string
	VNICs        []ProfileInterface
	VHBAs        []ProfileInterface
}

// Profile is a concrete deployment derived from a profile template.
// Count > 0 expands into Count numbered instances.
type Profile struct {
	Name     string
	Template string
	Org      string
	Count    int
	MgmtIP   string
}
