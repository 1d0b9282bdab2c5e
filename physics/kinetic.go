package physics

import "math"

// Kinetic is a point mass in cell space, one integration step per rendered frame
type Kinetic struct {
	X, Y       float64
	VelX, VelY float64
	AccelX     float64
	AccelY     float64
}

// Integrate performs one step: v = v + a*dt; p = p + v*dt
func Integrate(k *Kinetic, dt float64) (x, y int) {
	k.VelX += k.AccelX * dt
	k.VelY += k.AccelY * dt
	k.X += k.VelX * dt
	k.Y += k.VelY * dt
	return GridPos(k)
}

// ApplyImpulse adds a velocity delta
func ApplyImpulse(k *Kinetic, vx, vy float64) {
	k.VelX += vx
	k.VelY += vy
}

// ReflectBoundsX bounces off the side walls [minX, maxX), returns true if reflection occurred
func ReflectBoundsX(k *Kinetic, minX, maxX int) bool {
	if k.X < float64(minX) {
		k.X = float64(minX)
		k.VelX = -k.VelX
		return true
	}
	if k.X >= float64(maxX) {
		k.X = float64(maxX) - 0.5
		k.VelX = -k.VelX
		return true
	}
	return false
}

// GridPos returns the cell containing the mass
func GridPos(k *Kinetic) (x, y int) {
	return int(math.Floor(k.X)), int(math.Floor(k.Y))
}
