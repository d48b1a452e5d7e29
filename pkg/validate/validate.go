package validate

import (
	"fmt"
	"strconv"

	"github.com/mhartwig/fabricprov/internal/constants"
	"github.com/mhartwig/fabricprov/pkg/document"
	"github.com/mhartwig/fabricprov/pkg/models"
)

// Run validates every section of the document exactly once, building
// the Section Registry as it goes. It never stops at the first error:
// the returned Report holds every finding so the operator gets one
// complete pass. Sections absent from the document (or supplied empty)
// are recorded as undefined notices, never as errors.
func Run(doc *document.Document) (*Registry, *Report) {
	reg := NewRegistry()
	rep := &Report{}

	known := make(map[string]bool, len(constants.SectionOrder))
	for _, name := range constants.SectionOrder {
		known[name] = true
	}
	for _, name := range doc.SectionNames() {
		if !known[name] {
			rep.Add(name, "", "unknown section")
		}
	}

	for _, name := range constants.SectionOrder {
		sec, ok := doc.Section(name)
		if !ok || len(sec.Entries) == 0 {
			rep.AddUndefined(name)
			continue
		}

		reg.MarkPresent(name)

		switch name {
		case constants.SectionPools:
			validatePools(sec, reg, rep)
		case constants.SectionVLANs:
			validateVLANs(sec, reg, rep)
		case constants.SectionPolicies:
			validatePolicies(sec, reg, rep)
		case constants.SectionPortRoles:
			validatePortRoles(sec, reg, rep)
		case constants.SectionPortChannels:
			validatePortChannels(sec, reg, rep)
		case constants.SectionVNICTemplates:
			validateVNICTemplates(sec, reg, rep)
		case constants.SectionVHBATemplates:
			validateVHBATemplates(sec, reg, rep)
		case constants.SectionBootPolicies:
			validateBootPolicies(sec, reg, rep)
		case constants.SectionProfileTemplates:
			validateProfileTemplates(sec, reg, rep)
		case constants.SectionProfiles:
			validateProfiles(sec, reg, rep)
		}
	}

	checkReferences(reg, rep)

	return reg, rep
}

// checkReferences resolves cross-section name references up front
// instead of deferring every dangling name to the remote endpoint.
// References into a section that is absent from the document are left
// for the endpoint to judge, since the target may already exist there.
func checkReferences(reg *Registry, rep *Report) {
	// Appliance ports always need a resolvable segment reference
	for _, row := range reg.PortRows {
		if row.Role != models.RoleAppliance {
			continue
		}
		if _, ok := reg.VLANByName(row.VLAN); !ok {
			rep.Add(constants.SectionPortRoles, fmt.Sprintf("module %d port %d", row.Module, row.Port),
				"vlan %q does not resolve to a defined network segment", row.VLAN)
		}
	}

	for _, t := range reg.VNICTemplates {
		if reg.Present(constants.SectionPools) {
			if _, ok := reg.PoolByName(models.PoolMAC, t.MacPool); !ok {
				rep.Add(constants.SectionVNICTemplates, t.Name, "macPool %q is not a defined mac pool", t.MacPool)
			}
		}
		if reg.Present(constants.SectionVLANs) {
			if _, ok := reg.VLANByName(t.VLAN); !ok {
				rep.Add(constants.SectionVNICTemplates, t.Name, "vlan %q is not a defined network segment", t.VLAN)
			}
		}
	}

	for _, t := range reg.VHBATemplates {
		if reg.Present(constants.SectionPools) {
			if _, ok := reg.PoolByName(models.PoolWWPN, t.WwpnPool); !ok {
				rep.Add(constants.SectionVHBATemplates, t.Name, "wwpnPool %q is not a defined wwpn pool", t.WwpnPool)
			}
		}
	}

	for _, t := range reg.ProfileTemplates {
		checkPolicyRef(reg, rep, t.Name, "bootPolicy", t.BootPolicy, constants.SectionBootPolicies, func(name string) bool {
			for _, bp := range reg.BootPolicies {
				if bp.Name == name {
					return true
				}
			}
			return false
		})
		if reg.Present(constants.SectionPolicies) {
			checkNamedPolicy(reg, rep, t.Name, "diskPolicy", models.PolicyDisk, t.DiskPolicy)
			checkNamedPolicy(reg, rep, t.Name, "powerPolicy", models.PolicyPower, t.PowerPolicy)
			checkNamedPolicy(reg, rep, t.Name, "scrubPolicy", models.PolicyScrub, t.ScrubPolicy)
			checkNamedPolicy(reg, rep, t.Name, "maintPolicy", models.PolicyMaintenance, t.MaintPolicy)
		}
		if reg.Present(constants.SectionPools) {
			if t.UUIDPool != "" {
				if _, ok := reg.PoolByName(models.PoolUUID, t.UUIDPool); !ok {
					rep.Add(constants.SectionProfileTemplates, t.Name, "uuidPool %q is not a defined uuid pool", t.UUIDPool)
				}
			}
			if t.WWNNPool != "" {
				if _, ok := reg.PoolByName(models.PoolWWNN, t.WWNNPool); !ok {
					rep.Add(constants.SectionProfileTemplates, t.Name, "wwnnPool %q is not a defined wwnn pool", t.WWNNPool)
				}
			}
		}
		if reg.Present(constants.SectionVNICTemplates) {
			for _, iface := range t.VNICs {
				if _, ok := reg.VNICTemplateByName(iface.Template); !ok {
					rep.Add(constants.SectionProfileTemplates, t.Name,
						"vnic %s references undefined template %q", iface.Name, iface.Template)
				}
			}
		}
		if reg.Present(constants.SectionVHBATemplates) {
			for _, iface := range t.VHBAs {
				if _, ok := reg.VHBATemplateByName(iface.Template); !ok {
					rep.Add(constants.SectionProfileTemplates, t.Name,
						"vhba %s references undefined template %q", iface.Name, iface.Template)
				}
			}
		}
	}

	if reg.Present(constants.SectionProfileTemplates) {
		for _, p := range reg.Profiles {
			if _, ok := reg.ProfileTemplateByName(p.Template); !ok {
				rep.Add(constants.SectionProfiles, p.Name, "template %q is not a defined profile template", p.Template)
			}
		}
	}
}

func checkPolicyRef(reg *Registry, rep *Report, owner, field, name, section string, exists func(string) bool) {
	if name == "" || !reg.Present(section) {
		return
	}
	if !exists(name) {
		rep.Add(constants.SectionProfileTemplates, owner, "%s %q is not defined", field, name)
	}
}

func checkNamedPolicy(reg *Registry, rep *Report, owner, field string, kind models.PolicyKind, name string) {
	if name == "" {
		return
	}
	if _, ok := reg.PolicyByName(kind, name); !ok {
		rep.Add(constants.SectionProfileTemplates, owner, "%s %q is not a defined %s policy", field, name, kind)
	}
}

// entryIdent picks a stable identifier for an entry: its name when it
// has one, its 1-based position otherwise
func entryIdent(entry document.Entry, index int) string {
	if name := entry.Attr("name"); name != "" {
		return name
	}
	return fmt.Sprintf("entry %d", index+1)
}

// atoi is used only after IsIntInRange accepted the value
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
