package validate

import (
	"github.com/mhartwig/fabricprov/internal/constants"
	"github.com/mhartwig/fabricprov/pkg/document"
	"github.com/mhartwig/fabricprov/pkg/models"
)

// validateVNICTemplates checks the vnicTemplates section
func validateVNICTemplates(sec *document.Section, reg *Registry, rep *Report) {
	for i, entry := range sec.Entries {
		ident := entryIdent(entry, i)
		ok := true

		name := entry.Attr("name")
		if name == "" {
			rep.Add(sec.Name, ident, "name is required")
			ok = false
		}

		mtu := entry.Attr("mtu")
		if accepted, reason := IsOneOf(mtu, constants.ValidMTUs); !accepted {
			rep.Add(sec.Name, ident, "mtu: %s", reason)
			ok = false
		}

		fabric := entry.Attr("fabric")
		if accepted, reason := IsOneOf(fabric, models.FabricPreferences); !accepted {
			rep.Add(sec.Name, ident, "fabric: %s", reason)
			ok = false
		}

		if entry.Attr("macPool") == "" {
			rep.Add(sec.Name, ident, "macPool reference is required")
			ok = false
		}
		if entry.Attr("vlan") == "" {
			rep.Add(sec.Name, ident, "vlan reference is required")
			ok = false
		}

		updating, updOK := checkFlag(sec.Name, ident, "updating", entry.Attr("updating"), rep)
		nativeVLAN, natOK := checkFlag(sec.Name, ident, "nativeVlan", entry.Attr("nativeVlan"), rep)
		ok = ok && updOK && natOK

		if !ok {
			continue
		}

		reg.VNICTemplates = append(reg.VNICTemplates, models.VNICTemplate{
			Name:       name,
			MTU:        atoi(mtu),
			Fabric:     fabric,
			MacPool:    entry.Attr("macPool"),
			QoS:        entry.Attr("qos"),
			VLAN:       entry.Attr("vlan"),
			Updating:   updating,
			NativeVLAN: nativeVLAN,
			Org:        orgOrRoot(entry.Attr("org")),
		})
	}
}

// validateVHBATemplates checks the vhbaTemplates section
func validateVHBATemplates(sec *document.Section, reg *Registry, rep *Report) {
	for i, entry := range sec.Entries {
		ident := entryIdent(entry, i)
		ok := true

		name := entry.Attr("name")
		if name == "" {
			rep.Add(sec.Name, ident, "name is required")
			ok = false
		}

		fabric := entry.Attr("fabric")
		if accepted, reason := IsOneOf(fabric, models.FabricPreferences); !accepted {
			rep.Add(sec.Name, ident, "fabric: %s", reason)
			ok = false
		}

		if entry.Attr("wwpnPool") == "" {
			rep.Add(sec.Name, ident, "wwpnPool reference is required")
			ok = false
		}

		updating, updOK := checkFlag(sec.Name, ident, "updating", entry.Attr("updating"), rep)
		ok = ok && updOK

		if !ok {
			continue
		}

		reg.VHBATemplates = append(reg.VHBATemplates, models.VHBATemplate{
			Name:     name,
			Fabric:   fabric,
			WwpnPool: entry.Attr("wwpnPool"),
			QoS:      entry.Attr("qos"),
			VSAN:     entry.Attr("vsan"),
			Updating: updating,
			Org:      orgOrRoot(entry.Attr("org")),
		})
	}
}

// checkFlag validates an optional yes/no attribute, defaulting to no
func checkFlag(section, ident, field, value string, rep *Report) (bool, bool) {
	if value == "" {
		return false, true
	}
	if accepted, reason := IsYesNo(value); !accepted {
		rep.Add(section, ident, "%s: %s", field, reason)
		return false, false
	}
	return value == "yes", true
}
