package apply

import (
	"fmt"

	"github.com/mhartwig/fabricprov/internal/constants"
	"github.com/mhartwig/fabricprov/pkg/models"
)

// portRoleEndpoint maps a port role to its remote object endpoint.
// Unset rows have no endpoint and are skipped entirely.
func portRoleEndpoint(role models.PortRole) string {
	switch role {
	case models.RoleServer:
		return constants.EndpointServerPorts
	case models.RoleUplink:
		return constants.EndpointUplinkPorts
	case models.RoleAppliance:
		return constants.EndpointAppliancePorts
	case models.RoleFcoe:
		return constants.EndpointFcoePorts
	}
	return ""
}

// applyPortRoles issues each configured port row once per fabric. Both
// per-fabric objects of one row form one group.
func (o *Orchestrator) applyPortRoles() {
	for _, row := range o.reg.PortRows {
		row := row
		if row.Role == models.RoleUnset {
			continue
		}

		groupName := fmt.Sprintf("module %d port %d (%s)", row.Module, row.Port, row.Role)
		o.runGroup(constants.SectionPortRoles, groupName, func() error {
			for _, fabric := range constants.Fabrics {
				if err := o.upsertPortRole(fabric, row); err != nil {
					return fmt.Errorf("fabric %s: %w", fabric, err)
				}
			}
			return nil
		})
	}
}

func (o *Orchestrator) upsertPortRole(fabric string, row models.PortRow) error {
	dn := fmt.Sprintf("fabric/%s/slot-%d/port-%d", fabric, row.Module, row.Port)
	payload := map[string]interface{}{
		"dn":     dn,
		"fabric": fabric,
		"module": row.Module,
		"port":   row.Port,
	}

	if row.Role == models.RoleAppliance {
		payload["vlan"] = row.VLAN
		payload["mode"] = row.Mode
		payload["native"] = row.Native
		if row.QoS != "" {
			payload["qos"] = row.QoS
		}
	}

	_, err := o.client.Apply(portRoleEndpoint(row.Role),
		map[string]interface{}{"dn": dn}, payload)
	return err
}

// applyPortChannels issues each channel definition once per fabric:
// the channel object plus its two member ports, all in one group
func (o *Orchestrator) applyPortChannels() {
	for _, pc := range o.reg.PortChannels {
		pc := pc
		groupName := fmt.Sprintf("port channel %s/%s", pc.NameA, pc.NameB)

		o.runGroup(constants.SectionPortChannels, groupName, func() error {
			for _, fabric := range constants.Fabrics {
				if err := o.upsertPortChannel(fabric, pc); err != nil {
					return fmt.Errorf("fabric %s: %w", fabric, err)
				}
			}
			return nil
		})
	}
}

func (o *Orchestrator) upsertPortChannel(fabric string, pc models.PortChannel) error {
	name := pc.Name(fabric)
	id := pc.ID(fabric)

	chanDN := fmt.Sprintf("fabric/%s/pc-%d", fabric, id)
	_, err := o.client.Apply(constants.EndpointPortChannels,
		map[string]interface{}{"dn": chanDN},
		map[string]interface{}{
			"dn":     chanDN,
			"name":   name,
			"id":     id,
			"fabric": fabric,
		})
	if err != nil {
		return fmt.Errorf("channel %s: %w", name, err)
	}

	for _, port := range []int{pc.Port1, pc.Port2} {
		memberDN := fmt.Sprintf("%s/member-slot-%d-port-%d", chanDN, pc.Module, port)
		_, err := o.client.Apply(constants.EndpointChannelMembers,
			map[string]interface{}{"dn": memberDN},
			map[string]interface{}{
				"dn":      memberDN,
				"channel": chanDN,
				"module":  pc.Module,
				"port":    port,
			})
		if err != nil {
			return fmt.Errorf("member port %d: %w", port, err)
		}
	}

	return nil
}
