package models

// BootDeviceType identifies what kind of device a boot entry points at
type BootDeviceType string

const (
	BootLocal   BootDeviceType = "local"
	BootNetwork BootDeviceType = "network"
	BootStorage BootDeviceType = "storage"
)

// BootDeviceTypes lists every valid boot device type
var BootDeviceTypes = []string{string(BootLocal), string(BootNetwork), string(BootStorage)}

// LocalDevices lists valid local media for a local boot entry
var LocalDevices = []string{"cdrom", "floppy", "localdisk"}

// BootDevice is one ordered entry in a boot policy.
// For local entries Device1 names the media. For network entries Device1
// and Device2 name vNICs. For storage entries Device1 and Device2 name
// the primary and secondary target identities; Fabric selects which side
// the primary path goes through.
type BootDevice struct {
	Type    BootDeviceType
	Device1 string
	Device2 string
	Fabric  string
}

// BootPolicy is a named, ordered list of boot devices
type BootPolicy struct {
	Name    string
	Org     string
	Devices []BootDevice
}
