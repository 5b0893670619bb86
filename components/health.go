package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current int
	Max     int

	// DamageOpacity is the strength of the hit overlay, 1 on a hit fading to 0.
	DamageOpacity float64
	Flash         *gween.Tween
}

// Dead reports whether the entity has no health left.
func (h *HealthData) Dead() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
