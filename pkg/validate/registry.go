package validate

import (
	"github.com/mhartwig/fabricprov/pkg/models"
)

// Registry is the typed, already-validated payload of every supplied
// section plus a presence flag per section. It is built once during
// validation and read (never written) by the apply phase.
type Registry struct {
	Pools            []models.Pool
	VLANs            []models.VLAN
	Policies         []models.Policy
	PortRows         []models.PortRow
	PortChannels     []models.PortChannel
	VNICTemplates    []models.VNICTemplate
	VHBATemplates    []models.VHBATemplate
	BootPolicies     []models.BootPolicy
	ProfileTemplates []models.ProfileTemplate
	Profiles         []models.Profile

	present map[string]bool
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{present: make(map[string]bool)}
}

// MarkPresent flags a section as supplied in the document
func (r *Registry) MarkPresent(section string) {
	r.present[section] = true
}

// Present reports whether the named section was supplied
func (r *Registry) Present(section string) bool {
	return r.present[section]
}

// PoolByName finds a validated pool of the given kind
func (r *Registry) PoolByName(kind models.PoolKind, name string) (models.Pool, bool) {
	for _, p := range r.Pools {
		if p.Kind == kind && p.Name == name {
			return p, true
		}
	}
	return models.Pool{}, false
}

// VLANByName finds a validated network segment
func (r *Registry) VLANByName(name string) (models.VLAN, bool) {
	for _, v := range r.VLANs {
		if v.Name == name {
			return v, true
		}
	}
	return models.VLAN{}, false
}

// PolicyByName finds a validated policy of the given kind
func (r *Registry) PolicyByName(kind models.PolicyKind, name string) (models.Policy, bool) {
	for _, p := range r.Policies {
		if p.Kind == kind && p.Name == name {
			return p, true
		}
	}
	return models.Policy{}, false
}

// VNICTemplateByName finds a validated network interface template
func (r *Registry) VNICTemplateByName(name string) (models.VNICTemplate, bool) {
	for _, t := range r.VNICTemplates {
		if t.Name == name {
			return t, true
		}
	}
	return models.VNICTemplate{}, false
}

// VHBATemplateByName finds a validated storage interface template
func (r *Registry) VHBATemplateByName(name string) (models.VHBATemplate, bool) {
	for _, t := range r.VHBATemplates {
		if t.Name == name {
			return t, true
		}
	}
	return models.VHBATemplate{}, false
}

// ProfileTemplateByName finds a validated profile template
func (r *Registry) ProfileTemplateByName(name string) (models.ProfileTemplate, bool) {
	for _, t := range r.ProfileTemplates {
		if t.Name == name {
			return t, true
		}
	}
	return models.ProfileTemplate{}, false
}
