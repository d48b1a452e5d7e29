package apply

import (
	"fmt"

	"github.com/mhartwig/fabricprov/internal/constants"
	"github.com/mhartwig/fabricprov/pkg/models"
)

// poolEndpoint maps a pool kind to its remote object endpoint
func poolEndpoint(kind models.PoolKind) string {
	switch kind {
	case models.PoolMAC:
		return constants.EndpointMacPools
	case models.PoolUUID:
		return constants.EndpointUUIDPools
	case models.PoolWWNN:
		return constants.EndpointWWNNPools
	case models.PoolWWPN:
		return constants.EndpointWWPNPools
	}
	return ""
}

// applyPools upserts each pool and its member range block. The pool
// object and its block are one causal group: a pool without its range
// hands out nothing, so a partial result counts as a failed unit.
func (o *Orchestrator) applyPools() {
	for _, pool := range o.reg.Pools {
		pool := pool
		groupName := fmt.Sprintf("%s pool %s", pool.Kind, pool.Name)

		o.runGroup(constants.SectionPools, groupName, func() error {
			orgDN, err := o.client.Orgs().Resolve(pool.Org)
			if err != nil {
				return err
			}

			poolDN := fmt.Sprintf("%s/%s-pool-%s", orgDN, pool.Kind, pool.Name)
			_, err = o.client.Apply(poolEndpoint(pool.Kind),
				map[string]interface{}{"dn": poolDN},
				map[string]interface{}{
					"dn":    poolDN,
					"name":  pool.Name,
					"org":   orgDN,
					"order": string(pool.Order),
				})
			if err != nil {
				return fmt.Errorf("pool object: %w", err)
			}

			blockDN := fmt.Sprintf("%s/block-%s-%s", poolDN, pool.From, pool.To)
			_, err = o.client.Apply(constants.EndpointPoolBlocks,
				map[string]interface{}{"dn": blockDN},
				map[string]interface{}{
					"dn":   blockDN,
					"pool": poolDN,
					"from": pool.From,
					"to":   pool.To,
				})
			if err != nil {
				return fmt.Errorf("member range: %w", err)
			}

			return nil
		})
	}
}
