package v1alpha1

import (
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-content/internal/content/race"
	"github.com/KirkDiggler/rpg-content/internal/content/weapon"
	"github.com/KirkDiggler/rpg-content/internal/entities"
	"github.com/KirkDiggler/rpg-content/internal/errors"
	"github.com/KirkDiggler/rpg-content/internal/services/content"
)

// Request field names
const (
	fieldRaceID       = "race_id"
	fieldDraftID      = "draft_id"
	fieldCharacterID  = "character_id"
	fieldPlayerID     = "player_id"
	fieldName         = "name"
	fieldSeed         = "seed"
	fieldFace         = "face"
	fieldKind         = "kind"
	fieldModel        = "model"
	fieldWielder      = "wielder"
	fieldPlayableOnly = "playable_only"
)

func getString(req *structpb.Struct, key string) string {
	return req.GetFields()[key].GetStringValue()
}

func getBool(req *structpb.Struct, key string) bool {
	return req.GetFields()[key].GetBoolValue()
}

// getModel returns the opaque model value, or nil when absent
func getModel(req *structpb.Struct) any {
	v, ok := req.GetFields()[fieldModel]
	if !ok {
		return nil
	}
	return v.AsInterface()
}

func getInt(s *structpb.Struct, key string) (int, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return 0, nil
	}
	if _, isNum := v.GetKind().(*structpb.Value_NumberValue); !isNum {
		return 0, errors.InvalidArgumentf("%s must be a number", key)
	}
	n := v.GetNumberValue()
	if n != math.Trunc(n) || n > math.MaxInt32 || n < math.MinInt32 {
		return 0, errors.InvalidArgumentf("%s must be an integer", key)
	}
	return int(n), nil
}

// getStatistics decodes an optional statistics object; absent means nil
func getStatistics(req *structpb.Struct, key string) (*entities.Statistics, error) {
	v, ok := req.GetFields()[key]
	if !ok {
		return nil, nil
	}
	s := v.GetStructValue()
	if s == nil {
		return nil, errors.InvalidArgumentf("%s must be an object", key)
	}

	stats := &entities.Statistics{}
	fields := []struct {
		key string
		dst *int
	}{
		{"strength", &stats.Strength},
		{"perception", &stats.Perception},
		{"endurance", &stats.Endurance},
		{"charisma", &stats.Charisma},
		{"intelligence", &stats.Intelligence},
		{"agility", &stats.Agility},
		{"luck", &stats.Luck},
		{"melee_damage", &stats.MeleeDamage},
		{"action_points", &stats.ActionPoints},
	}
	for _, f := range fields {
		n, err := getInt(s, f.key)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s", key)
		}
		*f.dst = n
	}
	return stats, nil
}

func statisticsToMap(s entities.Statistics) map[string]any {
	return map[string]any{
		"strength":      s.Strength,
		"perception":    s.Perception,
		"endurance":     s.Endurance,
		"charisma":      s.Charisma,
		"intelligence":  s.Intelligence,
		"agility":       s.Agility,
		"luck":          s.Luck,
		"melee_damage":  s.MeleeDamage,
		"action_points": s.ActionPoints,
	}
}

func stringsToList(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func spriteSheetToMap(s race.SpriteSheet) map[string]any {
	return map[string]any{
		"clone_of": s.CloneOf,
		"base":     s.Base,
		"overlay":  s.Overlay,
	}
}

func raceToMap(r content.RaceInfo) map[string]any {
	return map[string]any{
		"id":           r.ID,
		"playable":     r.Playable,
		"faces":        stringsToList(r.Faces),
		"sprite_sheet": spriteSheetToMap(r.SpriteSheet),
	}
}

func draftToMap(d *entities.CharacterDraft) map[string]any {
	if d == nil {
		return nil
	}
	return map[string]any{
		"id":          d.ID,
		"player_id":   d.PlayerID,
		"name":        d.Name,
		"race_id":     d.RaceID,
		"face":        d.Face,
		"weapon_kind": d.WeaponKind,
		"statistics":  statisticsToMap(d.Statistics),
		"expires_at":  d.ExpiresAt,
		"created_at":  d.CreatedAt,
		"updated_at":  d.UpdatedAt,
	}
}

func characterToMap(c *entities.Character) map[string]any {
	if c == nil {
		return nil
	}
	return map[string]any{
		"id":          c.ID,
		"player_id":   c.PlayerID,
		"name":        c.Name,
		"race_id":     c.RaceID,
		"face":        c.Face,
		"weapon_kind": c.WeaponKind,
		"statistics":  statisticsToMap(c.Statistics),
		"created_at":  c.CreatedAt,
	}
}

func reportToMap(kind string, r weapon.Report) map[string]any {
	return map[string]any{
		"kind":              kind,
		"action_point_cost": r.ActionPointCost,
		"damage_type":       r.DamageType,
		"damage_base":       r.DamageBase,
		"damage_range": map[string]any{
			"min": r.DamageRange.Min,
			"max": r.DamageRange.Max,
		},
	}
}

func toStruct(m map[string]any) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return s, nil
}
