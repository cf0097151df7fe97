package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ClampFloat constrains a value to the range [lo, hi].
func ClampFloat(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Damp scales speed by factor and snaps tiny residues to zero so resting
// bodies settle instead of drifting forever.
func Damp(speed, factor float64) float64 {
	speed *= factor
	if speed > -dampFloor && speed < dampFloor {
		return 0
	}
	return speed
}

const dampFloor = 0.01
