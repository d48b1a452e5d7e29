package validate

import (
	"github.com/mhartwig/fabricprov/internal/constants"
	"github.com/mhartwig/fabricprov/pkg/document"
	"github.com/mhartwig/fabricprov/pkg/models"
)

// validateVLANs checks the vlans section. Which tags are required
// depends on the fabric affinity: common and fabA take tagA, fabB takes
// tagB, diff takes both.
func validateVLANs(sec *document.Section, reg *Registry, rep *Report) {
	for i, entry := range sec.Entries {
		ident := entryIdent(entry, i)
		ok := true

		name := entry.Attr("name")
		if name == "" {
			rep.Add(sec.Name, ident, "name is required")
			ok = false
		}

		affinity := entry.Attr("fabric")
		if accepted, reason := IsOneOf(affinity, models.FabricAffinities); !accepted {
			rep.Add(sec.Name, ident, "fabric: %s", reason)
			continue
		}

		var needA, needB bool
		switch models.FabricAffinity(affinity) {
		case models.AffinityCommon, models.AffinityFabA:
			needA = true
		case models.AffinityFabB:
			needB = true
		case models.AffinityDiff:
			needA, needB = true, true
		}

		tagA, tagAOK := checkVLANTag(sec.Name, ident, "tagA", entry.Attr("tagA"), needA, rep)
		tagB, tagBOK := checkVLANTag(sec.Name, ident, "tagB", entry.Attr("tagB"), needB, rep)
		ok = ok && tagAOK && tagBOK

		defaultNet := false
		if v := entry.Attr("defaultNet"); v != "" {
			if accepted, reason := IsYesNo(v); !accepted {
				rep.Add(sec.Name, ident, "defaultNet: %s", reason)
				ok = false
			} else {
				defaultNet = v == "yes"
			}
		}

		if !ok {
			continue
		}

		reg.VLANs = append(reg.VLANs, models.VLAN{
			Name:       name,
			Affinity:   models.FabricAffinity(affinity),
			TagA:       tagA,
			TagB:       tagB,
			DefaultNet: defaultNet,
		})
	}
}

// checkVLANTag validates one numeric tag. A required tag must be an
// integer in [1,4095]; a tag that is not required must be empty.
func checkVLANTag(section, ident, field, value string, required bool, rep *Report) (int, bool) {
	if !required {
		if value != "" {
			rep.Add(section, ident, "%s must be empty for this fabric affinity", field)
			return 0, false
		}
		return 0, true
	}

	if value == "" {
		rep.Add(section, ident, "%s is required for this fabric affinity", field)
		return 0, false
	}

	if accepted, reason := IsIntInRange(value, constants.MinVLANTag, constants.MaxVLANTag); !accepted {
		rep.Add(section, ident, "%s: %s", field, reason)
		return 0, false
	}

	return atoi(value), true
}
