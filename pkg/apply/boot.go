package apply

import (
	"fmt"

	"github.com/mhartwig/fabricprov/internal/constants"
	"github.com/mhartwig/fabricprov/pkg/models"
)

// applyBootPolicies upserts each boot policy and its ordered device
// list as one group. The ordinal position of a device in the document
// list becomes its boot order.
func (o *Orchestrator) applyBootPolicies() {
	for _, policy := range o.reg.BootPolicies {
		policy := policy

		o.runGroup(constants.SectionBootPolicies, fmt.Sprintf("boot policy %s", policy.Name), func() error {
			orgDN, err := o.client.Orgs().Resolve(policy.Org)
			if err != nil {
				return err
			}

			policyDN := fmt.Sprintf("%s/boot-policy-%s", orgDN, policy.Name)
			_, err = o.client.Apply(constants.EndpointBootPolicies,
				map[string]interface{}{"dn": policyDN},
				map[string]interface{}{
					"dn":   policyDN,
					"name": policy.Name,
					"org":  orgDN,
				})
			if err != nil {
				return fmt.Errorf("policy object: %w", err)
			}

			for i, dev := range policy.Devices {
				if err := o.upsertBootDevice(policyDN, i+1, dev); err != nil {
					return fmt.Errorf("device %d: %w", i+1, err)
				}
			}

			return nil
		})
	}
}

func (o *Orchestrator) upsertBootDevice(policyDN string, order int, dev models.BootDevice) error {
	devDN := fmt.Sprintf("%s/order-%d", policyDN, order)
	payload := map[string]interface{}{
		"dn":     devDN,
		"policy": policyDN,
		"type":   string(dev.Type),
		"order":  order,
	}

	switch dev.Type {
	case models.BootLocal:
		payload["device"] = dev.Device1
	case models.BootNetwork:
		payload["primary"] = dev.Device1
		if dev.Device2 != "" {
			payload["secondary"] = dev.Device2
			payload["fabric"] = dev.Fabric
		}
	case models.BootStorage:
		payload["fabric"] = dev.Fabric
	}

	_, err := o.client.Apply(constants.EndpointBootDevices,
		map[string]interface{}{"dn": devDN}, payload)
	if err != nil {
		return err
	}

	if dev.Type == models.BootStorage {
		return o.upsertSanPaths(devDN, dev)
	}
	return nil
}

// upsertSanPaths issues the two paths of a storage boot device. The
// primary path goes through the preferred fabric toward the primary
// target; the secondary path takes the other fabric. When fabric B is
// preferred the primary/secondary target identities swap sides.
func (o *Orchestrator) upsertSanPaths(devDN string, dev models.BootDevice) error {
	primaryFabric := constants.FabricA
	secondaryFabric := constants.FabricB
	primaryTarget := dev.Device1
	secondaryTarget := dev.Device2

	if dev.Fabric == constants.FabricB {
		primaryFabric, secondaryFabric = constants.FabricB, constants.FabricA
		if secondaryTarget != "" {
			primaryTarget, secondaryTarget = secondaryTarget, primaryTarget
		}
	}

	paths := []struct {
		rank   string
		fabric string
		target string
	}{
		{"primary", primaryFabric, primaryTarget},
	}
	if secondaryTarget != "" {
		paths = append(paths, struct {
			rank   string
			fabric string
			target string
		}{"secondary", secondaryFabric, secondaryTarget})
	}

	for _, p := range paths {
		pathDN := fmt.Sprintf("%s/path-%s", devDN, p.rank)
		_, err := o.client.Apply(constants.EndpointSanPaths,
			map[string]interface{}{"dn": pathDN},
			map[string]interface{}{
				"dn":     pathDN,
				"device": devDN,
				"rank":   p.rank,
				"fabric": p.fabric,
				"target": p.target,
			})
		if err != nil {
			return fmt.Errorf("%s path: %w", p.rank, err)
		}
	}

	return nil
}
