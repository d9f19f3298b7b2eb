package transformer

import (
	"math"

	"github.com/jonathan/resume-scorer/internal/vecmath"
)

// positionalEncoding returns the sinusoidal encoding of position: sine on even
// indices and cosine on odd ones.
func positionalEncoding(position, dimensions int) []float64 {
	enc := make([]float64, dimensions)
	for i := range enc {
		angle := float64(position) / math.Pow(10000, float64(2*i)/float64(dimensions))
		if i%2 == 0 {
			enc[i] = math.Sin(angle)
		} else {
			enc[i] = math.Cos(angle)
		}
	}
	return enc
}

// selfAttention applies scaled dot-product attention with queries, keys and
// values all equal to input.
func selfAttention(input [][]float64) [][]float64 {
	if len(input) == 0 {
		return nil
	}
	dk := len(input[0])
	scale := math.Sqrt(float64(dk))

	out := make([][]float64, len(input))
	scores := make([]float64, len(input))
	for i, query := range input {
		for j, key := range input {
			scores[j] = vecmath.Dot(query, key) / scale
		}
		weights := vecmath.Softmax(scores)

		row := make([]float64, dk)
		for j, value := range input {
			for k, v := range value {
				row[k] += weights[j] * v
			}
		}
		out[i] = row
	}
	return out
}

// multiHeadAttention splits each vector into heads contiguous segments of
// headDim, attends within each head and concatenates the results.
func multiHeadAttention(input [][]float64, heads, headDim int) [][]float64 {
	headOutputs := make([][][]float64, heads)
	for h := 0; h < heads; h++ {
		segment := make([][]float64, len(input))
		for i, vec := range input {
			seg := make([]float64, headDim)
			start := h * headDim
			if start < len(vec) {
				copy(seg, vec[start:min(start+headDim, len(vec))])
			}
			segment[i] = seg
		}
		headOutputs[h] = selfAttention(segment)
	}

	out := make([][]float64, len(input))
	for i := range input {
		row := make([]float64, 0, heads*headDim)
		for h := 0; h < heads; h++ {
			row = append(row, headOutputs[h][i]...)
		}
		out[i] = row
	}
	return out
}

// feedForward applies the fixed two-layer ReLU network and layer-normalizes
// its output.
func (e *Encoder) feedForward(input []float64) []float64 {
	hidden := make([]float64, e.cfg.HiddenDim)
	for i := range hidden {
		hidden[i] = max(0, vecmath.Dot(e.w1[i], input))
	}

	out := make([]float64, len(input))
	for i := range out {
		out[i] = vecmath.Dot(e.w2[i], hidden)
	}
	return vecmath.LayerNorm(out)
}

// block is one encoder layer: attention with residual add-and-norm followed by
// feed-forward with residual add-and-norm.
func (e *Encoder) block(input [][]float64) [][]float64 {
	attention := multiHeadAttention(input, e.cfg.Heads, e.headDim)

	out := make([][]float64, len(input))
	for i, vec := range input {
		mid := vecmath.LayerNorm(addVectors(vec, attention[i]))
		out[i] = vecmath.LayerNorm(addVectors(mid, e.feedForward(mid)))
	}
	return out
}

func addVectors(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i]
		if i < len(b) {
			out[i] += b[i]
		}
	}
	return out
}

// feedForwardWeights builds the deterministic input-to-hidden (cosine) and
// hidden-to-output (sine) weight matrices.
func feedForwardWeights(dimensions, hiddenDim int) (w1, w2 [][]float64) {
	w1 = make([][]float64, hiddenDim)
	for i := range w1 {
		w1[i] = make([]float64, dimensions)
		for j := range w1[i] {
			w1[i][j] = math.Cos(float64(i+j+1)*0.1) * 0.5
		}
	}
	w2 = make([][]float64, dimensions)
	for i := range w2 {
		w2[i] = make([]float64, hiddenDim)
		for j := range w2[i] {
			w2[i][j] = math.Sin(float64(i+j+1)*0.1) * 0.5
		}
	}
	return w1, w2
}
