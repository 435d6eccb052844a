package domain

const DefaultCooldownDays = 3

// UserPreferences is the learned affinity state for one user. Weights are
// signed and unbounded; selection only consults the top positively-weighted
// entries per dimension. Version backs the optimistic write at the storage
// boundary: feedback updates only apply when the stored version still matches.
type UserPreferences struct {
	UserID                 int64              `json:"user_id"`
	Colors                 map[string]float64 `json:"colors"`
	Styles                 map[string]float64 `json:"styles"`
	Materials              map[string]float64 `json:"materials"`
	CooldownDays           int                `json:"cooldown_days"`
	TemperatureSensitivity int                `json:"temperature_sensitivity"`
	Version                int64              `json:"version"`
}

// DefaultPreferences returns the onboarding state for a user.
func DefaultPreferences(userID int64) UserPreferences {
	return UserPreferences{
		UserID:       userID,
		Colors:       map[string]float64{},
		Styles:       map[string]float64{},
		Materials:    map[string]float64{},
		CooldownDays: DefaultCooldownDays,
	}
}

// Clone returns a deep copy so adjustments never mutate the stored snapshot.
func (p UserPreferences) Clone() UserPreferences {
	out := p
	out.Colors = copyWeights(p.Colors)
	out.Styles = copyWeights(p.Styles)
	out.Materials = copyWeights(p.Materials)
	return out
}

func copyWeights(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
