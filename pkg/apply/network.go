package apply

import (
	"fmt"

	"github.com/mhartwig/fabricprov/internal/constants"
	"github.com/mhartwig/fabricprov/pkg/models"
)

// applyVLANs upserts each network segment. A shared segment is one
// remote object; per-fabric-distinct segments are issued once per
// fabric, each carrying its own tag. All objects for one logical
// segment form one group.
func (o *Orchestrator) applyVLANs() {
	for _, vlan := range o.reg.VLANs {
		vlan := vlan

		o.runGroup(constants.SectionVLANs, fmt.Sprintf("vlan %s", vlan.Name), func() error {
			switch vlan.Affinity {
			case models.AffinityCommon:
				return o.upsertVLAN(vlan.Name, "", vlan.TagA, vlan.DefaultNet)
			case models.AffinityDiff:
				if err := o.upsertVLAN(vlan.Name, constants.FabricA, vlan.TagA, vlan.DefaultNet); err != nil {
					return err
				}
				return o.upsertVLAN(vlan.Name, constants.FabricB, vlan.TagB, vlan.DefaultNet)
			case models.AffinityFabA:
				return o.upsertVLAN(vlan.Name, constants.FabricA, vlan.TagA, vlan.DefaultNet)
			case models.AffinityFabB:
				return o.upsertVLAN(vlan.Name, constants.FabricB, vlan.TagB, vlan.DefaultNet)
			}
			return fmt.Errorf("unknown fabric affinity %q", vlan.Affinity)
		})
	}
}

// upsertVLAN issues one segment object. An empty fabric means the
// segment is shared by both fabrics.
func (o *Orchestrator) upsertVLAN(name, fabric string, tag int, defaultNet bool) error {
	dn := fmt.Sprintf("fabric/lan/net-%s", name)
	scope := "common"
	if fabric != "" {
		dn = fmt.Sprintf("fabric/lan/%s/net-%s", fabric, name)
		scope = fabric
	}

	_, err := o.client.Apply(constants.EndpointVLANs,
		map[string]interface{}{"dn": dn},
		map[string]interface{}{
			"dn":         dn,
			"name":       name,
			"fabric":     scope,
			"tag":        tag,
			"defaultNet": defaultNet,
		})
	if err != nil {
		return fmt.Errorf("segment on fabric %s: %w", scope, err)
	}
	return nil
}
