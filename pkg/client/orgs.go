package client

import (
	"fmt"
	"sync"

	"github.com/mhartwig/fabricprov/internal/constants"
)

// OrgCache resolves organization names to their distinguished names,
// creating missing sub-organizations under the root on first use.
// Resolved names are cached for the lifetime of the run.
type OrgCache struct {
	client *FabricClient
	cache  map[string]string
	mu     sync.RWMutex
}

// NewOrgCache creates a new organization resolver
func NewOrgCache(client *FabricClient) *OrgCache {
	return &OrgCache{
		client: client,
		cache:  map[string]string{constants.RootOrgName: constants.RootOrgDN},
	}
}

// Resolve returns the DN for an organization name. The root org always
// exists; a named sub-organization is upserted under the root (nesting
// is one level deep only).
func (oc *OrgCache) Resolve(name string) (string, error) {
	if name == "" {
		name = constants.RootOrgName
	}

	oc.mu.RLock()
	dn, ok := oc.cache[name]
	oc.mu.RUnlock()
	if ok {
		return dn, nil
	}

	dn = fmt.Sprintf("%s/org-%s", constants.RootOrgDN, name)

	lookup := map[string]interface{}{"dn": dn}
	payload := map[string]interface{}{
		"name":   name,
		"dn":     dn,
		"parent": constants.RootOrgDN,
	}

	if _, err := oc.client.Apply(constants.EndpointOrgs, lookup, payload); err != nil {
		return "", fmt.Errorf("failed to resolve org %s: %w", name, err)
	}

	oc.mu.Lock()
	oc.cache[name] = dn
	oc.mu.Unlock()

	return dn, nil
}

// Known reports whether a name has already been resolved this run
func (oc *OrgCache) Known(name string) bool {
	oc.mu.RLock()
	defer oc.mu.RUnlock()
	_, ok := oc.cache[name]
	return ok
}
