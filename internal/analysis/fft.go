package analysis

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrTooShort   = errors.New("analysis: series too short")
	ErrFlatSeries = errors.New("analysis: series has no oscillation")
)

// PowerSpectrum returns the magnitude of the lower half of the spectrum of
// data after removing its mean.
func PowerSpectrum(data []float64) []float64 {
	spectrum := fft.FFTReal(centered(data))
	ps := make([]float64, len(spectrum)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}

	return ps
}

// DominantPeriod returns the period, in the unit of dt, of the strongest
// oscillation in series sampled every dt.
func DominantPeriod(series []float64, dt float64) (float64, error) {
	n := len(series)
	if n < 4 {
		return 0, ErrTooShort
	}

	ps := PowerSpectrum(series)

	maxPower := 0.0
	maxIdx := 0
	for k := 1; k < len(ps); k++ {
		if ps[k] > maxPower {
			maxPower = ps[k]
			maxIdx = k
		}
	}
	if maxIdx == 0 {
		return 0, ErrFlatSeries
	}

	return float64(n) * dt / float64(maxIdx), nil
}

func centered(data []float64) []float64 {
	out := make([]float64, len(data))
	copy(out, data)
	if len(out) > 0 {
		floats.AddConst(-floats.Sum(out)/float64(len(out)), out)
	}
	return out
}
