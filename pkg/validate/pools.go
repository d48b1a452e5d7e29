package validate

import (
	"github.com/mhartwig/fabricprov/internal/constants"
	"github.com/mhartwig/fabricprov/pkg/document"
	"github.com/mhartwig/fabricprov/pkg/models"
)

// validatePools checks the pools section: every entry must carry a
// known kind, bounds in the kind's native format, and From < To under
// that format's ordering
func validatePools(sec *document.Section, reg *Registry, rep *Report) {
	for i, entry := range sec.Entries {
		ident := entryIdent(entry, i)
		ok := true

		kind := entry.Attr("kind")
		if accepted, reason := IsOneOf(kind, models.PoolKinds); !accepted {
			rep.Add(sec.Name, ident, "kind: %s", reason)
			continue
		}

		name := entry.Attr("name")
		if name == "" {
			rep.Add(sec.Name, ident, "name is required")
			ok = false
		}

		from := entry.Attr("from")
		to := entry.Attr("to")
		fromOK := checkPoolBound(sec.Name, ident, "from", models.PoolKind(kind), from, rep)
		toOK := checkPoolBound(sec.Name, ident, "to", models.PoolKind(kind), to, rep)
		ok = ok && fromOK && toOK

		if fromOK && toOK && comparePoolBounds(models.PoolKind(kind), from, to) >= 0 {
			rep.Add(sec.Name, ident, "from %q must be strictly below to %q", from, to)
			ok = false
		}

		order := entry.Attr("order")
		if order == "" {
			order = string(models.OrderDefault)
		}
		if accepted, reason := IsOneOf(order, []string{
			string(models.OrderSequential), string(models.OrderDefault),
		}); !accepted {
			rep.Add(sec.Name, ident, "order: %s", reason)
			ok = false
		}

		if !ok {
			continue
		}

		reg.Pools = append(reg.Pools, models.Pool{
			Kind:  models.PoolKind(kind),
			Name:  name,
			From:  from,
			To:    to,
			Order: models.AssignmentOrder(order),
			Org:   orgOrRoot(entry.Attr("org")),
		})
	}
}

// checkPoolBound validates one range bound against the kind's native format
func checkPoolBound(section, ident, field string, kind models.PoolKind, value string, rep *Report) bool {
	var accepted bool
	var reason string

	switch kind {
	case models.PoolMAC:
		accepted, reason = IsColonHex(value, 6)
	case models.PoolWWNN, models.PoolWWPN:
		accepted, reason = IsColonHex(value, 8)
	case models.PoolUUID:
		accepted, reason = IsUUIDSuffix(value)
	}

	if !accepted {
		rep.Add(section, ident, "%s: %s", field, reason)
	}
	return accepted
}

// comparePoolBounds orders two bounds using the kind's comparison
// semantics: hex string compare for address-like kinds, numeric compare
// for the UUID suffix
func comparePoolBounds(kind models.PoolKind, from, to string) int {
	if kind == models.PoolUUID {
		return CompareUUIDSuffix(from, to)
	}
	return CompareColonHex(from, to)
}

func orgOrRoot(org string) string {
	if org == "" {
		return constants.RootOrgName
	}
	return org
}
