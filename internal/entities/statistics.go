package entities

// Statistics is the attribute record attached to a character.
// The character creation flow owns it; race descriptors only adjust it in place.
type Statistics struct {
	Strength     int `json:"strength"`
	Perception   int `json:"perception"`
	Endurance    int `json:"endurance"`
	Charisma     int `json:"charisma"`
	Intelligence int `json:"intelligence"`
	Agility      int `json:"agility"`
	Luck         int `json:"luck"`
	MeleeDamage  int `json:"melee_damage"`
	ActionPoints int `json:"action_points"`
}

// Apply adds delta to every field, scaled by sign (+1 or -1).
// Applying the same delta with opposite signs leaves the record unchanged.
func (s *Statistics) Apply(delta Statistics, sign int) {
	s.Strength += delta.Strength * sign
	s.Perception += delta.Perception * sign
	s.Endurance += delta.Endurance * sign
	s.Charisma += delta.Charisma * sign
	s.Intelligence += delta.Intelligence * sign
	s.Agility += delta.Agility * sign
	s.Luck += delta.Luck * sign
	s.MeleeDamage += delta.MeleeDamage * sign
	s.ActionPoints += delta.ActionPoints * sign
}
