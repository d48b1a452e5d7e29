package validate

import (
	"github.com/mhartwig/fabricprov/internal/constants"
	"github.com/mhartwig/fabricprov/pkg/document"
	"github.com/mhartwig/fabricprov/pkg/models"
)

// validatePortRoles checks the portRoles section. The port number bound
// depends on the module id; appliance rows additionally need a network
// segment reference and a switching mode.
func validatePortRoles(sec *document.Section, reg *Registry, rep *Report) {
	for i, entry := range sec.Entries {
		ident := entryIdent(entry, i)
		ok := true

		module, port, boundsOK := checkModulePort(sec.Name, ident, entry.Attr("module"), entry.Attr("port"), rep)
		ok = ok && boundsOK

		role := entry.Attr("role")
		if role == "" {
			role = string(models.RoleUnset)
		}
		if accepted, reason := IsOneOf(role, models.PortRoles); !accepted {
			rep.Add(sec.Name, ident, "role: %s", reason)
			continue
		}

		vlan := entry.Attr("vlan")
		mode := entry.Attr("mode")
		native := false

		if models.PortRole(role) == models.RoleAppliance {
			if vlan == "" {
				rep.Add(sec.Name, ident, "vlan reference is required for appliance ports")
				ok = false
			}
			if accepted, reason := IsOneOf(mode, models.PortModes); !accepted {
				rep.Add(sec.Name, ident, "mode: %s", reason)
				ok = false
			}
			if v := entry.Attr("native"); v != "" {
				if accepted, reason := IsYesNo(v); !accepted {
					rep.Add(sec.Name, ident, "native: %s", reason)
					ok = false
				} else {
					native = v == "yes"
				}
			}
		}

		if !ok {
			continue
		}

		reg.PortRows = append(reg.PortRows, models.PortRow{
			Module: module,
			Port:   port,
			Role:   models.PortRole(role),
			VLAN:   vlan,
			Native: native,
			Mode:   mode,
			QoS:    entry.Attr("qos"),
		})
	}
}

// validatePortChannels checks the portChannels section: the two channel
// endpoints must differ in both name and id, and both member ports must
// lie inside the module's valid range and differ from each other
func validatePortChannels(sec *document.Section, reg *Registry, rep *Report) {
	for i, entry := range sec.Entries {
		ident := entryIdent(entry, i)
		ok := true

		nameA := entry.Attr("nameA")
		nameB := entry.Attr("nameB")
		if nameA == "" || nameB == "" {
			rep.Add(sec.Name, ident, "nameA and nameB are required")
			ok = false
		} else if nameA == nameB {
			rep.Add(sec.Name, ident, "channel names must differ, both are %q", nameA)
			ok = false
		}

		idA, idAOK := checkChannelID(sec.Name, ident, "idA", entry.Attr("idA"), rep)
		idB, idBOK := checkChannelID(sec.Name, ident, "idB", entry.Attr("idB"), rep)
		ok = ok && idAOK && idBOK
		if idAOK && idBOK && idA == idB {
			rep.Add(sec.Name, ident, "channel ids must differ, both are %d", idA)
			ok = false
		}

		module, maxPort, moduleOK := checkModule(sec.Name, ident, entry.Attr("module"), rep)
		ok = ok && moduleOK

		port1, port1OK := checkPort(sec.Name, ident, "port1", entry.Attr("port1"), maxPort, moduleOK, rep)
		port2, port2OK := checkPort(sec.Name, ident, "port2", entry.Attr("port2"), maxPort, moduleOK, rep)
		ok = ok && port1OK && port2OK
		if port1OK && port2OK && port1 == port2 {
			rep.Add(sec.Name, ident, "member ports must differ, both are %d", port1)
			ok = false
		}

		if !ok {
			continue
		}

		reg.PortChannels = append(reg.PortChannels, models.PortChannel{
			NameA:  nameA,
			IDA:    idA,
			NameB:  nameB,
			IDB:    idB,
			Module: module,
			Port1:  port1,
			Port2:  port2,
		})
	}
}

// checkModulePort validates a module id and a port number bounded by
// that module's physical port count
func checkModulePort(section, ident, moduleStr, portStr string, rep *Report) (int, int, bool) {
	module, maxPort, moduleOK := checkModule(section, ident, moduleStr, rep)
	port, portOK := checkPort(section, ident, "port", portStr, maxPort, moduleOK, rep)
	return module, port, moduleOK && portOK
}

func checkModule(section, ident, value string, rep *Report) (module, maxPort int, ok bool) {
	if accepted, reason := IsIntInRange(value, 1, 2); !accepted {
		rep.Add(section, ident, "module: %s", reason)
		return 0, 0, false
	}
	module = atoi(value)
	maxPort = constants.Module1MaxPort
	if module == 2 {
		maxPort = constants.Module2MaxPort
	}
	return module, maxPort, true
}

func checkPort(section, ident, field, value string, maxPort int, moduleKnown bool, rep *Report) (int, bool) {
	if !moduleKnown {
		// Without a valid module id the bound is unknown; only check syntax
		if accepted, reason := IsIntInRange(value, 1, constants.Module1MaxPort); !accepted {
			rep.Add(section, ident, "%s: %s", field, reason)
			return 0, false
		}
		return atoi(value), true
	}
	if accepted, reason := IsIntInRange(value, 1, maxPort); !accepted {
		rep.Add(section, ident, "%s: %s", field, reason)
		return 0, false
	}
	return atoi(value), true
}

func checkChannelID(section, ident, field, value string, rep *Report) (int, bool) {
	if accepted, reason := IsIntInRange(value, 1, 256); !accepted {
		rep.Add(section, ident, "%s: %s", field, reason)
		return 0, false
	}
	return atoi(value), true
}
