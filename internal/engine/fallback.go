package engine

import (
	"math"
	"math/rand"
	"sync"

	"github.com/health-risk-server/internal/domain"
)

// The fallback estimator is a logistic model fitted once per process on
// seeded synthetic data. It is explicitly non-clinical: it exists only
// so that a domain registered without scoring rules still produces a
// bounded, deterministic score instead of failing. Domains with real
// formulas never touch it.

const (
	fallbackSeed     = 42
	fallbackDims     = 64
	fallbackSamples  = 1000
	fallbackEpochs   = 5
	fallbackLearning = 0.1
)

var (
	fallbackOnce sync.Once
	fallbackInst *FallbackEstimator
)

// FallbackEstimator scores any feature vector up to fallbackDims wide.
// After initialization it is read-only and safe for concurrent use.
type FallbackEstimator struct {
	weights []float64
	bias    float64
}

// SharedFallback returns the process-wide estimator, fitting it on first
// use. Concurrent first callers race safely to a single initialization.
func SharedFallback() *FallbackEstimator {
	fallbackOnce.Do(func() {
		fallbackInst = trainFallback()
	})
	return fallbackInst
}

func trainFallback() *FallbackEstimator {
	rng := rand.New(rand.NewSource(fallbackSeed))

	samples := make([][]float64, fallbackSamples)
	labels := make([]float64, fallbackSamples)
	for i := range samples {
		x := make([]float64, fallbackDims)
		sum := 0.0
		for d := range x {
			x[d] = rng.Float64()
			sum += x[d]
		}
		samples[i] = x
		if sum > fallbackDims/2 {
			labels[i] = 1
		}
	}

	weights := make([]float64, fallbackDims)
	bias := 0.0
	for epoch := 0; epoch < fallbackEpochs; epoch++ {
		for i, x := range samples {
			pred := logistic(dotCentered(weights, bias, x))
			grad := pred - labels[i]
			for d := range weights {
				weights[d] -= fallbackLearning * grad * (x[d] - 0.5)
			}
			bias -= fallbackLearning * grad
		}
	}

	return &FallbackEstimator{weights: weights, bias: bias}
}

// Score maps the vector through the fitted logistic model and clamps to
// [0,1]. Vectors wider than the model use only the fitted dimensions.
func (f *FallbackEstimator) Score(vector domain.FeatureVector) float64 {
	n := len(vector)
	if n > len(f.weights) {
		n = len(f.weights)
	}
	z := f.bias
	for i := 0; i < n; i++ {
		z += f.weights[i] * (vector[i] - 0.5)
	}
	return ClampScore(logistic(z))
}

func dotCentered(weights []float64, bias float64, x []float64) float64 {
	z := bias
	for i := range weights {
		z += weights[i] * (x[i] - 0.5)
	}
	return z
}

func logistic(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
