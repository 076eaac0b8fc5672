package scene

import (
	"fmt"

	"github.com/chazu/boxy/pkg/arch"
	"github.com/chazu/boxy/pkg/box"
)

// ValidationSeverity indicates whether a finding blocks geometry
// generation or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks tessellation
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	NodeID   NodeID             // which node has the problem (zero if scene-level)
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	if e.NodeID.IsZero() {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] node %s: %s", e.Severity, e.NodeID.Short(), e.Message)
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning struct {
	NodeID  NodeID
	Message string
}

// ValidationResult bundles blocking errors and advisory warnings from all
// tiers.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// OK reports whether there are no blocking errors.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Validate runs the structural checks and returns every finding. An empty
// slice means the scene is structurally sound.
func Validate(s *Scene) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateNames(s)...)
	errs = append(errs, validateRepresentations(s)...)
	return errs
}

// ValidateAll runs the structural and geometric tiers.
func ValidateAll(s *Scene) ValidationResult {
	var result ValidationResult
	for _, e := range Validate(s) {
		if e.Severity == SeverityWarning {
			result.Warnings = append(result.Warnings, ValidationWarning{NodeID: e.NodeID, Message: e.Message})
			continue
		}
		result.Errors = append(result.Errors, e)
	}

	geomErrs, geomWarnings := validateGeometry(s)
	result.Errors = append(result.Errors, geomErrs...)
	result.Warnings = append(result.Warnings, geomWarnings...)
	return result
}

// validateNames checks that every node has a unique, non-empty name.
func validateNames(s *Scene) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]NodeID)
	for _, n := range s.Items() {
		if n.Name == "" {
			errs = append(errs, ValidationError{
				NodeID:   n.ID,
				Message:  "item has no name",
				Severity: SeverityError,
			})
			continue
		}
		if prev, dup := seen[n.Name]; dup {
			errs = append(errs, ValidationError{
				NodeID:   n.ID,
				Message:  fmt.Sprintf("duplicate name %q (also used by node %s)", n.Name, prev.Short()),
				Severity: SeverityError,
			})
			continue
		}
		seen[n.Name] = n.ID
	}
	return errs
}

// validateRepresentations checks every node has something to build.
func validateRepresentations(s *Scene) []ValidationError {
	var errs []ValidationError
	for _, n := range s.Items() {
		if n.Representation == nil {
			errs = append(errs, ValidationError{
				NodeID:   n.ID,
				Message:  fmt.Sprintf("item %q has no representation", n.Name),
				Severity: SeverityError,
			})
			continue
		}
		if n.Assembly == nil || len(n.Assembly.Parts) == 0 {
			errs = append(errs, ValidationError{
				NodeID:   n.ID,
				Message:  fmt.Sprintf("item %q has no generated parts", n.Name),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// validateGeometry checks box sizes, pivot vocabulary and mirror plans,
// and flags implausible proportions as warnings.
func validateGeometry(s *Scene) ([]ValidationError, []ValidationWarning) {
	var errs []ValidationError
	var warnings []ValidationWarning

	for _, n := range s.Items() {
		if n.Representation == nil {
			continue
		}
		bd, err := n.Representation.BoxData()
		if err != nil {
			errs = append(errs, ValidationError{
				NodeID:   n.ID,
				Message:  fmt.Sprintf("item %q: %v", n.Name, err),
				Severity: SeverityError,
			})
			continue
		}
		if idx, err := bd.PivotAnchor.Index(); err != nil || (!s.AdvancedPivots && idx >= box.LegacyBasicCount) {
			errs = append(errs, ValidationError{
				NodeID:   n.ID,
				Message:  fmt.Sprintf("item %q: pivot %s needs advanced pivots enabled", n.Name, bd.PivotAnchor),
				Severity: SeverityError,
			})
		}
		if n.Mirror != nil && !n.Mirror.Axis.Valid() {
			errs = append(errs, ValidationError{
				NodeID:   n.ID,
				Message:  fmt.Sprintf("item %q: mirror axis %s is invalid", n.Name, n.Mirror.Axis),
				Severity: SeverityError,
			})
		}

		switch r := n.Representation.(type) {
		case arch.Door:
			if r.Params.Depth > bd.Size.Z {
				warnings = append(warnings, ValidationWarning{
					NodeID:  n.ID,
					Message: fmt.Sprintf("door %q: leaf depth %g exceeds doorway depth %g", n.Name, r.Params.Depth, bd.Size.Z),
				})
			}
		case arch.Window:
			if r.Params.Frame < r.Params.Skirt {
				warnings = append(warnings, ValidationWarning{
					NodeID:  n.ID,
					Message: fmt.Sprintf("window %q: frame %g is thinner than its skirt %g", n.Name, r.Params.Frame, r.Params.Skirt),
				})
			}
		case arch.Staircase:
			layout, err := r.Params.Layout(bd.Size)
			if err != nil {
				errs = append(errs, ValidationError{
					NodeID:   n.ID,
					Message:  fmt.Sprintf("staircase %q: %v", n.Name, err),
					Severity: SeverityError,
				})
				continue
			}
			if layout.Rise > layout.Tread {
				warnings = append(warnings, ValidationWarning{
					NodeID:  n.ID,
					Message: fmt.Sprintf("staircase %q: rise %.1f exceeds tread %.1f (steeper than 45 degrees)", n.Name, layout.Rise, layout.Tread),
				})
			}
		}
	}
	return errs, warnings
}
