package weapon

// MeleeKind is the registry key of melee attacks
const MeleeKind = "melee"

const (
	meleeActionPointCost = 3
	meleeDamageType      = "blunt"
	// defaultMeleeDamage is used when nobody holds the weapon
	defaultMeleeDamage = 3
	// meleeDamageCeiling is the fixed maximum of the damage range.
	// It does not follow DamageBase, so a strong wielder gets Min > Max.
	meleeDamageCeiling = 3
)

// Melee is a close combat attack
type Melee struct {
	Base
}

// NewMelee creates a melee attack from model
func NewMelee(model any) *Melee {
	return &Melee{Base: NewBase(model)}
}

// CreateMelee is the Factory for MeleeKind
func CreateMelee(model any) Weapon {
	return NewMelee(model)
}

// ActionPointCost returns the AP spent per attack
func (m *Melee) ActionPointCost() int {
	return meleeActionPointCost
}

// DamageType returns the damage tag
func (m *Melee) DamageType() string {
	return meleeDamageType
}

// DamageBase returns the holder's melee damage, or the default with no holder
func (m *Melee) DamageBase() int {
	if user, ok := m.Wielder().User(); ok {
		return user.GetStatistics().MeleeDamage
	}
	return defaultMeleeDamage
}

// DamageRange returns (DamageBase, 3)
func (m *Melee) DamageRange() DamageRange {
	return DamageRange{
		Min: m.DamageBase(),
		Max: meleeDamageCeiling,
	}
}

var _ Weapon = (*Melee)(nil)
