package color

// Lerp blends a toward b by t, with t clamped to [0, 1].
func Lerp(a, b RGB, t float64) RGB {
	t = clamp01(t)
	return mix(a, b, t)
}

// LerpEased blends a toward b with t remapped by the quintic smoothstep
// t^3 * (t*(6t-15) + 10). The curve has zero slope at both ends.
func LerpEased(a, b RGB, t float64) RGB {
	t = clamp01(t)
	t = t * t * t * (t*(6*t-15) + 10)
	return mix(a, b, t)
}

// Blend picks LerpEased when eased is set and Lerp otherwise.
func Blend(a, b RGB, t float64, eased bool) RGB {
	if eased {
		return LerpEased(a, b, t)
	}
	return Lerp(a, b, t)
}

func mix(a, b RGB, t float64) RGB {
	return RGB{
		R: a.R*(1-t) + b.R*t,
		G: a.G*(1-t) + b.G*t,
		B: a.B*(1-t) + b.B*t,
	}
}

func clamp01(t float64) float64 {
	return min(max(t, 0), 1)
}
