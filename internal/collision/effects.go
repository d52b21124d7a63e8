package collision

// FoodHealthDelta is the health a food pickup restores, as a fraction of
// maximum health.
const FoodHealthDelta = 0.2

// Remover removes the overlapped particle and does nothing else.
type Remover struct {
	particles ParticleSet
}

// NewRemover creates a Remover over the given set.
func NewRemover(particles ParticleSet) *Remover {
	return &Remover{particles: particles}
}

// OnCollision removes the particle at index.
func (r *Remover) OnCollision(index int) {
	r.particles.Remove(index)
}

// FoodPickup eats the particle: it heals, zooms the camera, starts a dash
// and logs the meal.
type FoodPickup struct {
	Remover
	health      Health
	camera      Camera
	character   Dasher
	badges      Badges
	healthDelta float64
}

// NewFoodPickup creates a food effect restoring FoodHealthDelta health.
func NewFoodPickup(particles ParticleSet, health Health, camera Camera, character Dasher, badges Badges) *FoodPickup {
	return &FoodPickup{
		Remover:     Remover{particles: particles},
		health:      health,
		camera:      camera,
		character:   character,
		badges:      badges,
		healthDelta: FoodHealthDelta,
	}
}

// WithHealthDelta overrides the health restored per pickup.
func (f *FoodPickup) WithHealthDelta(delta float64) *FoodPickup {
	f.healthDelta = delta
	return f
}

// OnCollision removes the particle, then heals, zooms, dashes and counts,
// in that order.
func (f *FoodPickup) OnCollision(index int) {
	f.Remover.OnCollision(index)
	f.health.ChangeHealth(f.healthDelta)
	f.camera.ZoomScreen()
	f.character.Dash()
	f.badges.LogFoodConsumption()
}

// Hazard removes the particle, damages the character and shakes the camera.
type Hazard struct {
	Remover
	health Health
	camera Camera
	damage float64
}

// NewHazard creates a hazard effect that subtracts damage from health.
func NewHazard(particles ParticleSet, health Health, camera Camera, damage float64) *Hazard {
	return &Hazard{
		Remover: Remover{particles: particles},
		health:  health,
		camera:  camera,
		damage:  damage,
	}
}

// OnCollision removes the particle, then applies the damage and the zoom.
func (h *Hazard) OnCollision(index int) {
	h.Remover.OnCollision(index)
	h.health.ChangeHealth(-h.damage)
	h.camera.ZoomScreen()
}

var (
	_ Target = (*Remover)(nil)
	_ Target = (*FoodPickup)(nil)
	_ Target = (*Hazard)(nil)
	_ Target = TargetFunc(nil)
)
