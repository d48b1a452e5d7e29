package validate

import (
	"github.com/mhartwig/fabricprov/internal/constants"
	"github.com/mhartwig/fabricprov/pkg/document"
	"github.com/mhartwig/fabricprov/pkg/models"
)

// validatePolicies checks the policies section. The mode value is
// validated against the fixed set of its policy kind; power policies
// take a numeric priority bounded [1,10] or the no-cap sentinel.
func validatePolicies(sec *document.Section, reg *Registry, rep *Report) {
	for i, entry := range sec.Entries {
		ident := entryIdent(entry, i)
		ok := true

		kind := entry.Attr("kind")
		if accepted, reason := IsOneOf(kind, models.PolicyKinds); !accepted {
			rep.Add(sec.Name, ident, "kind: %s", reason)
			continue
		}

		name := entry.Attr("name")
		if name == "" {
			rep.Add(sec.Name, ident, "name is required")
			ok = false
		}

		mode := entry.Attr("mode")
		if !checkPolicyMode(sec.Name, ident, models.PolicyKind(kind), mode, rep) {
			ok = false
		}

		if !ok {
			continue
		}

		reg.Policies = append(reg.Policies, models.Policy{
			Kind:  models.PolicyKind(kind),
			Name:  name,
			Mode:  mode,
			Descr: entry.Attr("descr"),
		})
	}
}

func checkPolicyMode(section, ident string, kind models.PolicyKind, mode string, rep *Report) bool {
	switch kind {
	case models.PolicyPower:
		if mode == constants.PowerNoCap {
			return true
		}
		if accepted, reason := IsIntInRange(mode, constants.MinPowerPriority, constants.MaxPowerPriority); !accepted {
			rep.Add(section, ident, "mode: priority %s (or %q)", reason, constants.PowerNoCap)
			return false
		}
	case models.PolicyScrub:
		if accepted, reason := IsOneOf(mode, models.ScrubModes); !accepted {
			rep.Add(section, ident, "mode: %s", reason)
			return false
		}
	case models.PolicyMaintenance:
		if accepted, reason := IsOneOf(mode, models.MaintModes); !accepted {
			rep.Add(section, ident, "mode: %s", reason)
			return false
		}
	case models.PolicyDisk:
		if accepted, reason := IsOneOf(mode, models.DiskModes); !accepted {
			rep.Add(section, ident, "mode: %s", reason)
			return false
		}
	case models.PolicyBIOS, models.PolicyPlacement:
		if mode == "" {
			rep.Add(section, ident, "mode is required")
			return false
		}
	}
	return true
}
