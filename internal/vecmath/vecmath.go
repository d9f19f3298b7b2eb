// Package vecmath provides the small dense-vector operations shared by the
// embedding, similarity and encoder packages.
package vecmath

import "math"

// layerNormEpsilon stabilizes the variance in LayerNorm.
const layerNormEpsilon = 1e-5

// Dot returns the dot product of a and b over their common length.
func Dot(a, b []float64) float64 {
	n := min(len(a), len(b))
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// Norm returns the Euclidean length of v.
func Norm(v []float64) float64 {
	return math.Sqrt(Dot(v, v))
}

// Cosine returns the cosine similarity of a and b in [-1, 1]. It returns 0
// when the lengths differ or either vector has zero norm.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	dot, normA, normB := 0.0, 0.0, 0.0
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	norm := math.Sqrt(normA) * math.Sqrt(normB)
	if norm == 0 {
		return 0
	}
	return Clamp(dot/norm, -1, 1)
}

// Normalize returns a unit-length copy of v. A zero vector is returned as a
// zero copy.
func Normalize(v []float64) []float64 {
	out := make([]float64, len(v))
	norm := Norm(v)
	if norm == 0 {
		return out
	}
	for i, x := range v {
		out[i] = x / norm
	}
	return out
}

// Mean returns the element-wise mean of vectors, each assumed to have length
// dim. It returns a zero vector of length dim when vectors is empty.
func Mean(vectors [][]float64, dim int) []float64 {
	out := make([]float64, dim)
	if len(vectors) == 0 {
		return out
	}
	for _, v := range vectors {
		for i := 0; i < dim && i < len(v); i++ {
			out[i] += v[i]
		}
	}
	n := float64(len(vectors))
	for i := range out {
		out[i] /= n
	}
	return out
}

// Softmax returns the max-shifted softmax of values.
func Softmax(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	maxVal := values[0]
	for _, v := range values[1:] {
		maxVal = max(maxVal, v)
	}
	sum := 0.0
	for i, v := range values {
		out[i] = math.Exp(v - maxVal)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// LayerNorm centers v on its mean and scales by the population standard
// deviation.
func LayerNorm(v []float64) []float64 {
	out := make([]float64, len(v))
	if len(v) == 0 {
		return out
	}
	n := float64(len(v))
	mean := 0.0
	for _, x := range v {
		mean += x
	}
	mean /= n
	variance := 0.0
	for _, x := range v {
		variance += (x - mean) * (x - mean)
	}
	variance /= n
	std := math.Sqrt(variance + layerNormEpsilon)
	for i, x := range v {
		out[i] = (x - mean) / std
	}
	return out
}

// Clamp bounds x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Round rounds x to the given number of decimal places.
func Round(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}
