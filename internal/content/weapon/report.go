package weapon

// Report is a snapshot of the capability values of a weapon
type Report struct {
	ActionPointCost int         `json:"action_point_cost"`
	DamageType      string      `json:"damage_type"`
	DamageBase      int         `json:"damage_base"`
	DamageRange     DamageRange `json:"damage_range"`
}

// Describe reads every capability accessor of c
func Describe(c Capability) Report {
	return Report{
		ActionPointCost: c.ActionPointCost(),
		DamageType:      c.DamageType(),
		DamageBase:      c.DamageBase(),
		DamageRange:     c.DamageRange(),
	}
}
