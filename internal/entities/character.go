package entities

// CharacterDraft represents a character in creation
type CharacterDraft struct {
	ID         string     `json:"id"`
	PlayerID   string     `json:"player_id"`
	Name       string     `json:"name"`
	RaceID     string     `json:"race_id,omitempty"`
	Face       string     `json:"face,omitempty"`
	WeaponKind string     `json:"weapon_kind,omitempty"`
	Statistics Statistics `json:"statistics"`
	ExpiresAt  int64      `json:"expires_at"`
	CreatedAt  int64      `json:"created_at"`
	UpdatedAt  int64      `json:"updated_at"`
}

// GetStatistics returns a copy of the draft's statistics record
func (d *CharacterDraft) GetStatistics() Statistics {
	return d.Statistics
}

// HasRace reports whether a race is currently toggled on the draft
func (d *CharacterDraft) HasRace() bool {
	return d.RaceID != ""
}

// Character is a finalized draft. Race modifiers are already applied to Statistics.
type Character struct {
	ID         string     `json:"id"`
	PlayerID   string     `json:"player_id"`
	Name       string     `json:"name"`
	RaceID     string     `json:"race_id"`
	Face       string     `json:"face"`
	WeaponKind string     `json:"weapon_kind,omitempty"`
	Statistics Statistics `json:"statistics"`
	CreatedAt  int64      `json:"created_at"`
}

// GetStatistics returns a copy of the character's statistics record
func (c *Character) GetStatistics() Statistics {
	return c.Statistics
}
