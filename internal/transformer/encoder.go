// Package transformer implements a small, untrained, fully deterministic
// self-attention encoder. Token embeddings come from character hashing and
// every weight is a fixed trigonometric function of its index, so identical
// text always encodes to identical vectors.
package transformer

import (
	"math"
	"sort"
	"sync"

	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/vecmath"
)

// Encoder is immutable after construction and safe for concurrent use.
type Encoder struct {
	cfg        Config
	headDim    int
	positional [][]float64
	w1, w2     [][]float64
}

// Encoding holds the tokens of a text and their contextual vectors.
type Encoding struct {
	Tokens  []string
	Vectors [][]float64
}

// TokenImportance is a token and its saliency against the document vector.
type TokenImportance struct {
	Token      string  `json:"token"`
	Importance float64 `json:"importance"`
}

// TokenAttention is the softmax attention row of one token over all tokens.
type TokenAttention struct {
	Token   string    `json:"token"`
	Weights []float64 `json:"weights"`
}

// NewEncoder validates cfg and precomputes positional encodings and
// feed-forward weights.
func NewEncoder(cfg Config) (*Encoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	positional := make([][]float64, cfg.MaxTokens)
	for pos := range positional {
		positional[pos] = positionalEncoding(pos, cfg.Dimensions)
	}
	w1, w2 := feedForwardWeights(cfg.Dimensions, cfg.HiddenDim)

	return &Encoder{
		cfg:        cfg,
		headDim:    cfg.Dimensions / cfg.Heads,
		positional: positional,
		w1:         w1,
		w2:         w2,
	}, nil
}

var defaultEncoder = sync.OnceValue(func() *Encoder {
	e, err := NewEncoder(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return e
})

// Default returns the shared DefaultConfig encoder.
func Default() *Encoder {
	return defaultEncoder()
}

// Config returns the encoder configuration.
func (e *Encoder) Config() Config {
	return e.cfg
}

func (e *Encoder) tokenize(text string) []string {
	tokens := parsing.TokenizeRaw(text)
	if len(tokens) > e.cfg.MaxTokens {
		tokens = tokens[:e.cfg.MaxTokens]
	}
	return tokens
}

// embed hashes the characters of token into a vector, adds the positional
// encoding and normalizes.
func (e *Encoder) embed(token string, position int) []float64 {
	dim := e.cfg.Dimensions
	vec := make([]float64, dim)
	for i := 0; i < len(token); i++ {
		c := int(token[i])
		for d := 0; d < dim; d++ {
			vec[(c*(d+1)+i)%dim] += math.Sin(float64(c*(d+1)) * 0.01)
		}
	}
	for d, p := range e.positional[position] {
		vec[d] += p
	}
	return vecmath.Normalize(vec)
}

// Encode tokenizes text and runs the embeddings through every layer.
func (e *Encoder) Encode(text string) Encoding {
	tokens := e.tokenize(text)
	vectors := make([][]float64, len(tokens))
	for pos, token := range tokens {
		vectors[pos] = e.embed(token, pos)
	}
	if len(vectors) > 0 {
		for layer := 0; layer < e.cfg.Layers; layer++ {
			vectors = e.block(vectors)
		}
	}
	return Encoding{Tokens: tokens, Vectors: vectors}
}

// EncodeToVector mean-pools the encoded tokens into one unit vector. Text
// without tokens yields a zero vector.
func (e *Encoder) EncodeToVector(text string) []float64 {
	enc := e.Encode(text)
	return vecmath.Normalize(vecmath.Mean(enc.Vectors, e.cfg.Dimensions))
}

// Similarity is the dot product of the two document vectors.
func (e *Encoder) Similarity(text1, text2 string) float64 {
	return vecmath.Dot(e.EncodeToVector(text1), e.EncodeToVector(text2))
}

// ImportantTokens scores each token by the dot product of its encoded vector
// with the normalized sum of all token vectors and returns the topK
// highest. Repeated tokens are scored per occurrence.
func (e *Encoder) ImportantTokens(text string, topK int) []TokenImportance {
	enc := e.Encode(text)
	if len(enc.Vectors) == 0 || topK <= 0 {
		return []TokenImportance{}
	}

	sum := make([]float64, e.cfg.Dimensions)
	for _, v := range enc.Vectors {
		for i, x := range v {
			sum[i] += x
		}
	}
	centroid := vecmath.Normalize(sum)

	scored := make([]TokenImportance, len(enc.Vectors))
	for i, v := range enc.Vectors {
		scored[i] = TokenImportance{Token: enc.Tokens[i], Importance: vecmath.Dot(v, centroid)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Importance > scored[j].Importance
	})
	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}

// AttentionWeights returns, for every token, the softmax of its raw dot
// products with all encoded tokens.
func (e *Encoder) AttentionWeights(text string) []TokenAttention {
	enc := e.Encode(text)
	out := make([]TokenAttention, len(enc.Vectors))
	scores := make([]float64, len(enc.Vectors))
	for i, query := range enc.Vectors {
		for j, key := range enc.Vectors {
			scores[j] = vecmath.Dot(query, key)
		}
		out[i] = TokenAttention{Token: enc.Tokens[i], Weights: vecmath.Softmax(scores)}
	}
	return out
}
