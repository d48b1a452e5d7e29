package validate

import (
	"fmt"

	"github.com/mhartwig/fabricprov/pkg/document"
	"github.com/mhartwig/fabricprov/pkg/models"
)

// validateProfileTemplates checks the profileTemplates section,
// including the nested vNIC and vHBA instance lists
func validateProfileTemplates(sec *document.Section, reg *Registry, rep *Report) {
	for i, entry := range sec.Entries {
		ident := entryIdent(entry, i)
		ok := true

		name := entry.Attr("name")
		if name == "" {
			rep.Add(sec.Name, ident, "name is required")
			ok = false
		}

		vnics, vnicsOK := checkInterfaceList(sec.Name, ident, "vnics", entry.Children["vnics"], rep)
		vhbas, vhbasOK := checkInterfaceList(sec.Name, ident, "vhbas", entry.Children["vhbas"], rep)
		ok = ok && vnicsOK && vhbasOK

		if !ok {
			continue
		}

		reg.ProfileTemplates = append(reg.ProfileTemplates, models.ProfileTemplate{
			Name:         name,
			Org:          orgOrRoot(entry.Attr("org")),
			BootPolicy:   entry.Attr("bootPolicy"),
			DiskPolicy:   entry.Attr("diskPolicy"),
			PowerPolicy:  entry.Attr("powerPolicy"),
			ScrubPolicy:  entry.Attr("scrubPolicy"),
			MaintPolicy:  entry.Attr("maintPolicy"),
			StatsPolicy:  entry.Attr("statsPolicy"),
			HostFwPolicy: entry.Attr("hostFwPolicy"),
			UUIDPool:     entry.Attr("uuidPool"),
			WWNNPool:     entry.Attr("wwnnPool"),
			VNICs:        vnics,
			VHBAs:        vhbas,
		})
	}
}

// checkInterfaceList validates a nested vNIC/vHBA instance list: every
// row needs an instance name and a backing template name
func checkInterfaceList(section, ident, field string, rows []document.Entry, rep *Report) ([]models.ProfileInterface, bool) {
	var out []models.ProfileInterface
	ok := true

	for j, row := range rows {
		rowIdent := fmt.Sprintf("%s %s %d", ident, field, j+1)
		name := row.Attr("name")
		template := row.Attr("template")
		if name == "" {
			rep.Add(section, rowIdent, "name is required")
			ok = false
		}
		if template == "" {
			rep.Add(section, rowIdent, "template reference is required")
			ok = false
		}
		if name == "" || template == "" {
			continue
		}
		out = append(out, models.ProfileInterface{Name: name, Template: template})
	}

	return out, ok
}

// validateProfiles checks the profiles section
func validateProfiles(sec *document.Section, reg *Registry, rep *Report) {
	for i, entry := range sec.Entries {
		ident := entryIdent(entry, i)
		ok := true

		name := entry.Attr("name")
		if name == "" {
			rep.Add(sec.Name, ident, "name is required")
			ok = false
		}

		template := entry.Attr("template")
		if template == "" {
			rep.Add(sec.Name, ident, "template reference is required")
			ok = false
		}

		count := 0
		if v := entry.Attr("count"); v != "" {
			if accepted, reason := IsIntInRange(v, 1, 999); !accepted {
				rep.Add(sec.Name, ident, "count: %s", reason)
				ok = false
			} else {
				count = atoi(v)
			}
		}

		if v := entry.Attr("mgmtIP"); v != "" {
			if accepted, reason := IsDottedQuad(v); !accepted {
				rep.Add(sec.Name, ident, "mgmtIP: %s", reason)
				ok = false
			}
		}

		if !ok {
			continue
		}

		reg.Profiles = append(reg.Profiles, models.Profile{
			Name:     name,
			Template: template,
			Org:      orgOrRoot(entry.Attr("org")),
			Count:    count,
			MgmtIP:   entry.Attr("mgmtIP"),
		})
	}
}
