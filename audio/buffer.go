package audio

// Audio is one block of mono samples.
type Audio []float64

func (a *Audio) InitAudio(p Params) {
	*a = make(Audio, p.BlockSize)
}

// Block returns the first n samples of a, growing it if the host hands us a
// block larger than the configured size.
func (a *Audio) Block(n int) Audio {
	if cap(*a) < n {
		*a = make(Audio, n)
	}
	return (*a)[:n]
}

func (z Audio) Zero() Audio {
	for i := range z {
		z[i] = 0
	}
	return z
}

func (z Audio) Add(x Audio, y Audio) Audio {
	for i := range z {
		z[i] = x[i] + y[i]
	}
	return z
}

func (z Audio) Mul(x Audio, y Audio) Audio {
	for i := range z {
		z[i] = x[i] * y[i]
	}
	return z
}

func (z Audio) AddX(x Audio, f float64) Audio {
	for i := range z {
		z[i] = x[i] + f
	}
	return z
}

func (z Audio) MulX(x Audio, f float64) Audio {
	for i := range z {
		z[i] = x[i] * f
	}
	return z
}

// Float32 writes z into out, which must be at least as long.
func (z Audio) Float32(out []float32) {
	for i, x := range z {
		out[i] = float32(x)
	}
}
