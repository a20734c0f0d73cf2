package models

import (
	"fmt"

	"github.com/gridironforge/roster-api/internal/profiles"
)

// Problem describes one validation failure.
type Problem struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Report collects validation problems. The zero Report is valid.
type Report struct {
	Problems []Problem `json:"problems,omitempty"`
}

// OK is the boolean fast-path over the structured result.
func (r Report) OK() bool {
	return len(r.Problems) == 0
}

func (r *Report) addf(field, format string, args ...any) {
	r.Problems = append(r.Problems, Problem{Field: field, Reason: fmt.Sprintf(format, args...)})
}

func (r *Report) merge(prefix string, other Report) {
	for _, p := range other.Problems {
		field := p.Field
		if prefix != "" {
			field = prefix + "." + field
		}
		r.Problems = append(r.Problems, Problem{Field: field, Reason: p.Reason})
	}
}

func checkRange(r *Report, field string, v, min, max float64) {
	if v < min || v > max {
		r.addf(field, "%v outside [%v, %v]", v, min, max)
	}
}

// ValidatePhysical checks every measurement against the position's
// published ranges.
func ValidatePhysical(pos profiles.Position, phys PhysicalAttributes) Report {
	prof := profiles.PhysicalFor(pos)
	var r Report
	checkRange(&r, "height", float64(phys.Height), prof.Height.Min, prof.Height.Max)
	checkRange(&r, "weight", float64(phys.Weight), prof.Weight.Min, prof.Weight.Max)
	checkRange(&r, "armLength", phys.ArmLength, prof.ArmLength.Min, prof.ArmLength.Max)
	checkRange(&r, "handSize", phys.HandSize, prof.HandSize.Min, prof.HandSize.Max)
	checkRange(&r, "wingspan", phys.Wingspan, profiles.WingspanMin, profiles.WingspanMax)
	checkRange(&r, "speed", phys.Speed, prof.Speed.Min, prof.Speed.Max)
	checkRange(&r, "acceleration", float64(phys.Acceleration), prof.Acceleration.Min, prof.Acceleration.Max)
	checkRange(&r, "agility", float64(phys.Agility), prof.Agility.Min, prof.Agility.Max)
	checkRange(&r, "strength", float64(phys.Strength), prof.Strength.Min, prof.Strength.Max)
	checkRange(&r, "verticalJump", float64(phys.VerticalJump), prof.VerticalJump.Min, prof.VerticalJump.Max)
	return r
}

// ValidateSkillValue checks one skill's invariants: true value in [1,100],
// perceived bounds ordered, full reveal when the band has collapsed.
func ValidateSkillValue(sv SkillValue) Report {
	var r Report
	if sv.TrueValue < 1 || sv.TrueValue > 100 {
		r.addf("trueValue", "%d outside [1,100]", sv.TrueValue)
	}
	if sv.PerceivedMin > sv.PerceivedMax {
		r.addf("perceived", "min %d > max %d", sv.PerceivedMin, sv.PerceivedMax)
	}
	if sv.PerceivedMin < 1 || sv.PerceivedMax > 100 {
		r.addf("perceived", "band [%d,%d] outside [1,100]", sv.PerceivedMin, sv.PerceivedMax)
	}
	if sv.PerceivedMin == sv.PerceivedMax && sv.PerceivedMin != 0 && sv.PerceivedMin != sv.TrueValue {
		// a collapsed band must sit on the true value
		r.addf("perceived", "collapsed band %d differs from true value %d", sv.PerceivedMin, sv.TrueValue)
	}
	return r
}

// ValidateItFactor checks the hidden scalar's range.
func ValidateItFactor(f ItFactor) Report {
	var r Report
	if f.Value < 1 || f.Value > 100 {
		r.addf("value", "%d outside [1,100]", f.Value)
	}
	return r
}

// ValidateRoleFit checks hierarchy membership and ordering: the current
// role never outranks the ceiling and sits at most two ranks below it.
func ValidateRoleFit(fit RoleFit) Report {
	var r Report
	ceilIdx, curIdx := profiles.RoleIndex(fit.Ceiling), profiles.RoleIndex(fit.CurrentRole)
	if curIdx < ceilIdx {
		r.addf("currentRole", "%s outranks ceiling %s", fit.CurrentRole, fit.Ceiling)
	}
	if curIdx > ceilIdx+2 {
		r.addf("currentRole", "%s more than two ranks below ceiling %s", fit.CurrentRole, fit.Ceiling)
	}
	if fit.RoleEffectiveness < 1 || fit.RoleEffectiveness > 100 {
		r.addf("effectiveness", "%d outside [1,100]", fit.RoleEffectiveness)
	}
	return r
}

// ValidateSchemeFits checks full catalog coverage, known labels, and that
// off-side schemes carry the forced neutral.
func ValidateSchemeFits(pos profiles.Position, fits SchemeFits) Report {
	var r Report
	known := map[FitLabel]bool{FitPerfect: true, FitGood: true, FitNeutral: true, FitPoor: true, FitTerrible: true}
	for _, scheme := range profiles.Schemes {
		label, ok := fits[scheme.Name]
		if !ok {
			r.addf(scheme.Name, "missing from fit map")
			continue
		}
		if !known[label] {
			r.addf(scheme.Name, "unknown label %q", label)
		}
		if scheme.Side != profiles.SideOf(pos) && label != FitNeutral {
			r.addf(scheme.Name, "off-side scheme labeled %q, want neutral", label)
		}
	}
	if len(fits) != len(profiles.Schemes) {
		r.addf("schemes", "fit map has %d entries, catalog has %d", len(fits), len(profiles.Schemes))
	}
	return r
}

// ValidatePlayer runs the full-entity check.
func ValidatePlayer(p *Player) Report {
	var r Report
	if p == nil {
		r.addf("player", "nil")
		return r
	}
	if !p.Position.Valid() {
		r.addf("position", "unknown position %q", p.Position)
	}
	if p.Age < 20 || p.Age > 45 {
		r.addf("age", "%d implausible", p.Age)
	}
	r.merge("physical", ValidatePhysical(p.Position, p.Physical))
	if len(p.Skills) == 0 {
		r.addf("skills", "empty skill map")
	}
	for name, sv := range p.Skills {
		r.merge("skills."+name, ValidateSkillValue(sv))
	}
	r.merge("it", ValidateItFactor(p.It))
	r.merge("role", ValidateRoleFit(p.Role))
	r.merge("schemeFits", ValidateSchemeFits(p.Position, p.SchemeFits))
	return r
}

// ValidateViewModel checks the projection's own shape.
func ValidateViewModel(vm *PlayerViewModel) Report {
	var r Report
	if vm == nil {
		r.addf("viewModel", "nil")
		return r
	}
	if !vm.Position.Valid() {
		r.addf("position", "unknown position %q", vm.Position)
	}
	r.merge("physical", ValidatePhysical(vm.Position, vm.Physical))
	for name, sr := range vm.Skills {
		if sr.Min > sr.Max {
			r.addf("skills."+name, "min %d > max %d", sr.Min, sr.Max)
		}
		if sr.Min < 1 || sr.Max > 100 {
			r.addf("skills."+name, "band [%d,%d] outside [1,100]", sr.Min, sr.Max)
		}
	}
	if vm.RoleSummary == "" {
		r.addf("roleSummary", "empty")
	}
	if vm.InjuryDisplay == "" {
		r.addf("injuryDisplay", "empty")
	}
	return r
}
