package vrf

import (
	"github.com/alexisbeaulieu97/vrfctl/internal/model"
)

// Desired is the operator's intent for one VRF. An empty Description means "no opinion":
// it is never sent, since the device rejects empty descriptions.
type Desired struct {
	Name        string
	Description string
}

// Plan is the outcome of comparing a device definition with the desired state.
type Plan struct {
	// Existing is the definition read from the device, nil when absent.
	Existing *Definition
	// Intended is the payload to write, nil when nothing needs to change.
	Intended *Definition
	State    model.VerificationStatus
}

// Changed reports whether a write is needed.
func (p *Plan) Changed() bool {
	return p != nil && p.Intended != nil
}

// NewPlan computes the minimal change that brings existing to desired.
func NewPlan(existing *Definition, desired Desired) *Plan {
	if existing == nil {
		intended := NewDefinition(desired.Name)
		if desired.Description != "" {
			intended = intended.WithDescription(desired.Description)
		}
		return &Plan{Intended: intended, State: model.StatusMissing}
	}

	current, _ := existing.Description()
	if desired.Description != "" && current != desired.Description {
		return &Plan{
			Existing: existing,
			Intended: existing.WithDescription(desired.Description),
			State:    model.StatusDrifted,
		}
	}

	return &Plan{Existing: existing, State: model.StatusSatisfied}
}
