package apply

import (
	"fmt"

	"github.com/mhartwig/fabricprov/internal/constants"
	"github.com/mhartwig/fabricprov/pkg/client"
	"github.com/mhartwig/fabricprov/pkg/utils"
	"github.com/mhartwig/fabricprov/pkg/validate"
)

// Phase tracks where a run is in its lifecycle
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoaded
	PhaseValidated
	PhaseAborted
	PhaseConfirmed
	PhaseApplying
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoaded:
		return "loaded"
	case PhaseValidated:
		return "validated"
	case PhaseAborted:
		return "aborted"
	case PhaseConfirmed:
		return "confirmed"
	case PhaseApplying:
		return "applying"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

// GroupResult records the outcome of one causal group of upsert calls
type GroupResult struct {
	Section string
	Name    string
	Err     error
}

// Orchestrator walks the Section Registry in a fixed dependency order
// and issues idempotent upserts per entry. Causally dependent calls for
// one entry form a group that succeeds or fails as a unit; a failed
// group is recorded and skipped while sibling entries and later
// sections continue.
type Orchestrator struct {
	client  *client.FabricClient
	logger  *utils.Logger
	reg     *validate.Registry
	phase   Phase
	results []GroupResult
}

// NewOrchestrator creates an idle orchestrator
func NewOrchestrator(c *client.FabricClient) *Orchestrator {
	return &Orchestrator{
		client: c,
		logger: c.Logger(),
		phase:  PhaseIdle,
	}
}

// Load hands the orchestrator the validated registry
func (o *Orchestrator) Load(reg *validate.Registry) error {
	if o.phase != PhaseIdle {
		return fmt.Errorf("cannot load in phase %s", o.phase)
	}
	o.reg = reg
	o.phase = PhaseLoaded
	return nil
}

// MarkValidated records that validation completed without errors
func (o *Orchestrator) MarkValidated() error {
	if o.phase != PhaseLoaded {
		return fmt.Errorf("cannot mark validated in phase %s", o.phase)
	}
	o.phase = PhaseValidated
	return nil
}

// Confirm records operator confirmation to proceed past undefined sections
func (o *Orchestrator) Confirm() error {
	if o.phase != PhaseValidated {
		return fmt.Errorf("cannot confirm in phase %s", o.phase)
	}
	o.phase = PhaseConfirmed
	return nil
}

// Abort terminates the run before the apply phase
func (o *Orchestrator) Abort() {
	o.phase = PhaseAborted
}

// Phase returns the current lifecycle phase
func (o *Orchestrator) Phase() Phase {
	return o.phase
}

// Apply drives every present section against the remote endpoint in
// dependency order. It returns an error only for lifecycle misuse;
// remote failures are recorded per group and surfaced via Failed and
// Summary.
func (o *Orchestrator) Apply() error {
	if o.phase != PhaseConfirmed {
		return fmt.Errorf("cannot apply in phase %s", o.phase)
	}
	o.phase = PhaseApplying

	for _, section := range constants.SectionOrder {
		if !o.reg.Present(section) {
			o.logger.Debug("Section %s undefined, skipping", section)
			continue
		}

		o.logger.Info("═══ Applying %s ═══", section)

		switch section {
		case constants.SectionPools:
			o.applyPools()
		case constants.SectionVLANs:
			o.applyVLANs()
		case constants.SectionPolicies:
			o.applyPolicies()
		case constants.SectionPortRoles:
			o.applyPortRoles()
		case constants.SectionPortChannels:
			o.applyPortChannels()
		case constants.SectionVNICTemplates:
			o.applyVNICTemplates()
		case constants.SectionVHBATemplates:
			o.applyVHBATemplates()
		case constants.SectionBootPolicies:
			o.applyBootPolicies()
		case constants.SectionProfileTemplates:
			o.applyProfileTemplates()
		case constants.SectionProfiles:
			o.applyProfiles()
		}
	}

	o.phase = PhaseDone
	return nil
}

// runGroup executes one causal group. A failure partway through leaves
// the calls already issued applied on the remote system; there is no
// rollback, the group is just recorded as failed.
func (o *Orchestrator) runGroup(section, name string, fn func() error) {
	err := fn()
	o.results = append(o.results, GroupResult{Section: section, Name: name, Err: err})
	if err != nil {
		o.logger.Error(fmt.Sprintf("Group failed: [%s] %s", section, name), err)
	}
}

// Failed reports whether any group failed
func (o *Orchestrator) Failed() bool {
	for _, r := range o.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Results returns every group outcome in apply order
func (o *Orchestrator) Results() []GroupResult {
	return o.results
}

// Summary logs the final outcome, enumerating every failed group
func (o *Orchestrator) Summary() {
	failed := 0
	for _, r := range o.results {
		if r.Err != nil {
			failed++
		}
	}

	if failed == 0 {
		o.logger.Success("All %d groups applied", len(o.results))
		return
	}

	o.logger.Warning("%d of %d groups failed:", failed, len(o.results))
	for _, r := range o.results {
		if r.Err != nil {
			o.logger.Error(fmt.Sprintf("  [%s] %s", r.Section, r.Name), r.Err)
		}
	}
}
