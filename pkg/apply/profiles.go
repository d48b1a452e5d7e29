package apply

import (
	"fmt"

	"github.com/mhartwig/fabricprov/internal/constants"
	"github.com/mhartwig/fabricprov/pkg/models"
)

// applyProfileTemplates upserts each profile template and its nested
// interface instances as one group
func (o *Orchestrator) applyProfileTemplates() {
	for _, tmpl := range o.reg.ProfileTemplates {
		tmpl := tmpl

		o.runGroup(constants.SectionProfileTemplates, fmt.Sprintf("profile template %s", tmpl.Name), func() error {
			orgDN, err := o.client.Orgs().Resolve(tmpl.Org)
			if err != nil {
				return err
			}

			dn := fmt.Sprintf("%s/ls-templ-%s", orgDN, tmpl.Name)
			payload := map[string]interface{}{
				"dn":   dn,
				"name": tmpl.Name,
				"org":  orgDN,
			}
			setIfPresent(payload, "bootPolicy", tmpl.BootPolicy)
			setIfPresent(payload, "diskPolicy", tmpl.DiskPolicy)
			setIfPresent(payload, "powerPolicy", tmpl.PowerPolicy)
			setIfPresent(payload, "scrubPolicy", tmpl.ScrubPolicy)
			setIfPresent(payload, "maintPolicy", tmpl.MaintPolicy)
			setIfPresent(payload, "statsPolicy", tmpl.StatsPolicy)
			setIfPresent(payload, "hostFwPolicy", tmpl.HostFwPolicy)
			setIfPresent(payload, "uuidPool", tmpl.UUIDPool)
			setIfPresent(payload, "wwnnPool", tmpl.WWNNPool)

			_, err = o.client.Apply(constants.EndpointProfileTemplates,
				map[string]interface{}{"dn": dn}, payload)
			if err != nil {
				return fmt.Errorf("template object: %w", err)
			}

			if err := o.upsertProfileInterfaces(dn, constants.EndpointProfileVNICs, "ether", tmpl.VNICs); err != nil {
				return err
			}
			return o.upsertProfileInterfaces(dn, constants.EndpointProfileVHBAs, "fc", tmpl.VHBAs)
		})
	}
}

func (o *Orchestrator) upsertProfileInterfaces(templDN, endpoint, prefix string, ifaces []models.ProfileInterface) error {
	for i, iface := range ifaces {
		dn := fmt.Sprintf("%s/%s-%s", templDN, prefix, iface.Name)
		_, err := o.client.Apply(endpoint,
			map[string]interface{}{"dn": dn},
			map[string]interface{}{
				"dn":       dn,
				"owner":    templDN,
				"name":     iface.Name,
				"template": iface.Template,
				"order":    i + 1,
			})
		if err != nil {
			return fmt.Errorf("%s %s: %w", prefix, iface.Name, err)
		}
	}
	return nil
}

// applyProfiles instantiates each profile from its source template.
// A count expands into numbered instances; the expansion of one
// document entry is one group.
func (o *Orchestrator) applyProfiles() {
	for _, profile := range o.reg.Profiles {
		profile := profile

		o.runGroup(constants.SectionProfiles, fmt.Sprintf("profile %s", profile.Name), func() error {
			orgDN, err := o.client.Orgs().Resolve(profile.Org)
			if err != nil {
				return err
			}

			for _, name := range expandProfileNames(profile) {
				dn := fmt.Sprintf("%s/ls-%s", orgDN, name)
				payload := map[string]interface{}{
					"dn":       dn,
					"name":     name,
					"org":      orgDN,
					"template": profile.Template,
				}
				setIfPresent(payload, "mgmtIP", profile.MgmtIP)

				_, err := o.client.Apply(constants.EndpointInstances,
					map[string]interface{}{"dn": dn}, payload)
				if err != nil {
					return fmt.Errorf("instance %s: %w", name, err)
				}
			}

			return nil
		})
	}
}

// expandProfileNames turns one profile entry into its instance names:
// the bare name for count 0, name-01..name-NN otherwise
func expandProfileNames(profile models.Profile) []string {
	if profile.Count <= 0 {
		return []string{profile.Name}
	}
	names := make([]string, 0, profile.Count)
	for i := 1; i <= profile.Count; i++ {
		names = append(names, fmt.Sprintf("%s-%02d", profile.Name, i))
	}
	return names
}

func setIfPresent(payload map[string]interface{}, key, value string) {
	if value != "" {
		payload[key] = value
	}
}
