package logic

import (
	"fmt"
	"strings"

	"github.com/gridironforge/roster-api/internal/models"
)

type projectorService struct{}

// NewProjector builds the view projector. Every structure handed to a
// non-engine consumer goes through Project; there is no other approved
// path out of a Player.
func NewProjector() ProjectorService {
	return &projectorService{}
}

// Project derives the restricted view. Physical attributes are copied by
// value, every skill is reduced to its scouted band, and the hidden
// records (intangible factor, consistency, numeric effectiveness, the full
// scheme map) are rendered only as qualitative sentences or dropped
// entirely. The revealed-trait list passes through as-is: it is the
// authority on visibility.
func (s *projectorService) Project(p *models.Player, scheme string) *models.PlayerViewModel {
	vm := &models.PlayerViewModel{
		ID:         p.ID,
		Name:       p.Name(),
		Position:   p.Position,
		Age:        p.Age,
		Experience: p.Experience,
		Physical:   p.Physical, // value copy; mutating the view never touches the source
		DraftYear:  p.DraftYear,
		DraftRound: p.DraftRound,
		DraftPick:  p.DraftPick,
	}

	vm.Skills = make(map[string]models.SkillRange, len(p.Skills))
	for name, sv := range p.Skills {
		vm.Skills[name] = models.SkillRange{Min: sv.PerceivedMin, Max: sv.PerceivedMax}
	}

	vm.KnownTraits = append([]string{}, p.Traits.RevealedToUser...)

	vm.SchemeSummary = schemeSentence(p, scheme)
	vm.RoleSummary = roleSentence(p)
	vm.InjuryDisplay = p.Injury.Display()

	return vm
}

func schemeSentence(p *models.Player, scheme string) string {
	if scheme == "" {
		return "No scheme evaluation requested."
	}
	label, ok := p.SchemeFits[scheme]
	if !ok {
		return fmt.Sprintf("No evaluation available for the %s scheme.", prettyName(scheme))
	}
	name := prettyName(scheme)
	switch label {
	case models.FitPerfect:
		return fmt.Sprintf("Tailor-made for the %s scheme.", name)
	case models.FitGood:
		return fmt.Sprintf("Fits the %s scheme well.", name)
	case models.FitNeutral:
		return fmt.Sprintf("Could play in the %s scheme without standing out.", name)
	case models.FitPoor:
		return fmt.Sprintf("An awkward fit for the %s scheme.", name)
	default:
		return fmt.Sprintf("The %s scheme asks for a different player entirely.", name)
	}
}

// roleSentence buckets the hidden effectiveness score into qualitative
// language; the number itself never leaves the engine.
func roleSentence(p *models.Player) string {
	role := prettyName(string(p.Role.CurrentRole))
	switch eff := p.Role.RoleEffectiveness; {
	case eff >= 85:
		return fmt.Sprintf("Thriving as a %s.", role)
	case eff >= 65:
		return fmt.Sprintf("A dependable %s.", role)
	case eff >= 45:
		return fmt.Sprintf("Holding his own as a %s.", role)
	case eff >= 30:
		return fmt.Sprintf("Struggling in the %s role.", role)
	default:
		return fmt.Sprintf("Overmatched in the %s role.", role)
	}
}

func prettyName(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}
