package validate

import (
	"fmt"

	"github.com/mhartwig/fabricprov/internal/constants"
	"github.com/mhartwig/fabricprov/pkg/document"
	"github.com/mhartwig/fabricprov/pkg/models"
)

// validateBootPolicies checks the bootPolicies section. Each policy is
// a named container of ordered device rows; the row's position in the
// list becomes its boot order at apply time.
func validateBootPolicies(sec *document.Section, reg *Registry, rep *Report) {
	for i, entry := range sec.Entries {
		ident := entryIdent(entry, i)
		ok := true

		name := entry.Attr("name")
		if name == "" {
			rep.Add(sec.Name, ident, "name is required")
			ok = false
		}

		rows := entry.Children["devices"]
		if len(rows) == 0 {
			rep.Add(sec.Name, ident, "at least one boot device is required")
			ok = false
		}

		var devices []models.BootDevice
		for j, row := range rows {
			dev, devOK := checkBootDevice(sec.Name, fmt.Sprintf("%s device %d", ident, j+1), row, rep)
			if !devOK {
				ok = false
				continue
			}
			devices = append(devices, dev)
		}

		if !ok {
			continue
		}

		reg.BootPolicies = append(reg.BootPolicies, models.BootPolicy{
			Name:    name,
			Org:     orgOrRoot(entry.Attr("org")),
			Devices: devices,
		})
	}
}

// checkBootDevice validates one device row. Local rows name a fixed
// media device; network and storage rows carrying a secondary device
// must also declare the preferred fabric.
func checkBootDevice(section, ident string, row document.Entry, rep *Report) (models.BootDevice, bool) {
	devType := row.Attr("type")
	if accepted, reason := IsOneOf(devType, models.BootDeviceTypes); !accepted {
		rep.Add(section, ident, "type: %s", reason)
		return models.BootDevice{}, false
	}

	device1 := row.Attr("device1")
	device2 := row.Attr("device2")
	fabric := row.Attr("fabric")
	ok := true

	switch models.BootDeviceType(devType) {
	case models.BootLocal:
		if accepted, reason := IsOneOf(device1, models.LocalDevices); !accepted {
			rep.Add(section, ident, "device1: %s", reason)
			ok = false
		}
		if device2 != "" {
			rep.Add(section, ident, "local devices take no secondary device")
			ok = false
		}
	case models.BootNetwork, models.BootStorage:
		if device1 == "" {
			rep.Add(section, ident, "device1 is required")
			ok = false
		}
		if device2 != "" {
			if accepted, reason := IsOneOf(fabric, []string{constants.FabricA, constants.FabricB}); !accepted {
				rep.Add(section, ident, "fabric: %s (required with a secondary device)", reason)
				ok = false
			}
		}
	}

	if !ok {
		return models.BootDevice{}, false
	}

	return models.BootDevice{
		Type:    models.BootDeviceType(devType),
		Device1: device1,
		Device2: device2,
		Fabric:  fabric,
	}, true
}
