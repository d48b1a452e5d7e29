package apply

import (
	"fmt"

	"github.com/mhartwig/fabricprov/internal/constants"
	"github.com/mhartwig/fabricprov/pkg/models"
)

// applyPolicies upserts each policy. Power policies carry a cap
// sub-setting object in the same group; all other kinds are a single
// call.
func (o *Orchestrator) applyPolicies() {
	for _, policy := range o.reg.Policies {
		policy := policy
		groupName := fmt.Sprintf("%s policy %s", policy.Kind, policy.Name)

		o.runGroup(constants.SectionPolicies, groupName, func() error {
			orgDN, err := o.client.Orgs().Resolve(constants.RootOrgName)
			if err != nil {
				return err
			}

			dn := fmt.Sprintf("%s/%s-policy-%s", orgDN, policy.Kind, policy.Name)
			_, err = o.client.Apply(constants.EndpointPolicies,
				map[string]interface{}{"dn": dn},
				map[string]interface{}{
					"dn":    dn,
					"name":  policy.Name,
					"kind":  string(policy.Kind),
					"mode":  policy.Mode,
					"descr": policy.Descr,
					"org":   orgDN,
				})
			if err != nil {
				return fmt.Errorf("policy object: %w", err)
			}

			if policy.Kind == models.PolicyPower {
				capDN := dn + "/cap"
				_, err = o.client.Apply(constants.EndpointPowerCaps,
					map[string]interface{}{"dn": capDN},
					map[string]interface{}{
						"dn":       capDN,
						"policy":   dn,
						"priority": policy.Mode,
					})
				if err != nil {
					return fmt.Errorf("power cap: %w", err)
				}
			}

			return nil
		})
	}
}
