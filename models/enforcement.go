package models

// Tier is one step of the 2FA warning ladder. Tier 0 is the final warning: its offenders
// are removed from the organization.
type Tier struct {
	Team Team
	// Compliant members enabled 2FA since they were warned and leave the team.
	Compliant []string
	// Offenders still lack 2FA and move one tier closer to removal.
	Offenders []string
	// Destination is nil for tier 0.
	Destination *Team
}

type LadderPlan struct {
	Organization string
	Tiers        []Tier
	// Newcomers lack 2FA and are in no tier yet; they join the last tier.
	Newcomers []string
	Entry     Team
}

// Removals returns the logins removed from the organization by this plan.
func (p LadderPlan) Removals() []string {
	if len(p.Tiers) == 0 {
		return nil
	}
	return p.Tiers[0].Offenders
}
