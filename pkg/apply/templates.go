package apply

import (
	"fmt"

	"github.com/mhartwig/fabricprov/internal/constants"
)

// templateMode maps the updating flag to the remote template mode value
func templateMode(updating bool) string {
	if updating {
		return "updating-template"
	}
	return "initial-template"
}

// applyVNICTemplates upserts each network interface template
func (o *Orchestrator) applyVNICTemplates() {
	for _, tmpl := range o.reg.VNICTemplates {
		tmpl := tmpl

		o.runGroup(constants.SectionVNICTemplates, fmt.Sprintf("vnic template %s", tmpl.Name), func() error {
			orgDN, err := o.client.Orgs().Resolve(tmpl.Org)
			if err != nil {
				return err
			}

			dn := fmt.Sprintf("%s/lan-conn-templ-%s", orgDN, tmpl.Name)
			payload := map[string]interface{}{
				"dn":         dn,
				"name":       tmpl.Name,
				"org":        orgDN,
				"mtu":        tmpl.MTU,
				"fabric":     tmpl.Fabric,
				"macPool":    tmpl.MacPool,
				"vlan":       tmpl.VLAN,
				"mode":       templateMode(tmpl.Updating),
				"nativeVlan": tmpl.NativeVLAN,
			}
			if tmpl.QoS != "" {
				payload["qos"] = tmpl.QoS
			}

			_, err = o.client.Apply(constants.EndpointVNICTemplates,
				map[string]interface{}{"dn": dn}, payload)
			return err
		})
	}
}

// applyVHBATemplates upserts each storage interface template
func (o *Orchestrator) applyVHBATemplates() {
	for _, tmpl := range o.reg.VHBATemplates {
		tmpl := tmpl

		o.runGroup(constants.SectionVHBATemplates, fmt.Sprintf("vhba template %s", tmpl.Name), func() error {
			orgDN, err := o.client.Orgs().Resolve(tmpl.Org)
			if err != nil {
				return err
			}

			dn := fmt.Sprintf("%s/san-conn-templ-%s", orgDN, tmpl.Name)
			payload := map[string]interface{}{
				"dn":       dn,
				"name":     tmpl.Name,
				"org":      orgDN,
				"fabric":   tmpl.Fabric,
				"wwpnPool": tmpl.WwpnPool,
				"mode":     templateMode(tmpl.Updating),
			}
			if tmpl.QoS != "" {
				payload["qos"] = tmpl.QoS
			}
			if tmpl.VSAN != "" {
				payload["vsan"] = tmpl.VSAN
			}

			_, err = o.client.Apply(constants.EndpointVHBATemplates,
				map[string]interface{}{"dn": dn}, payload)
			return err
		})
	}
}
