package systems

import (
	"github.com/automoto/wangarena/components"
	cfg "github.com/automoto/wangarena/config"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DamagePlayer removes amount health from e and starts the hit overlay.
// It reports whether the hit was fatal.
func DamagePlayer(e *donburi.Entry, amount int) bool {
	h := components.Health.Get(e)
	if h.Dead() {
		return true
	}

	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	h.DamageOpacity = 1
	h.Flash = gween.New(1, 0, float32(cfg.Health.DamageFlashDuration), ease.Linear)

	entry := log.WithField("health", h.Current)
	if e.HasComponent(components.Name) {
		entry = entry.WithField("player", components.Name.Get(e).Name)
	}
	entry.Info("hit")

	return h.Dead()
}

// ResetHealth restores e to full health and clears the overlay.
func ResetHealth(e *donburi.Entry) {
	h := components.Health.Get(e)
	h.Current = h.Max
	h.DamageOpacity = 0
	h.Flash = nil
}

// IsDead reports whether e has run out of health.
func IsDead(e *donburi.Entry) bool {
	return components.Health.Get(e).Dead()
}

// UpdateHealth fades the damage overlays.
func UpdateHealth(ecs *ecs.ECS) {
	dt := float32(DeltaTime(ecs.World))
	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		h := components.Health.Get(e)
		if h.Flash == nil {
			return
		}
		opacity, done := h.Flash.Update(dt)
		h.DamageOpacity = float64(opacity)
		if done {
			h.DamageOpacity = 0
			h.Flash = nil
		}
	})
}
