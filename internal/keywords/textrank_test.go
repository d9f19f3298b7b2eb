package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJob = `Senior backend engineer to design distributed systems in Go and Kubernetes.
You will build data pipelines, operate Kubernetes clusters on AWS, and mentor engineers.
Experience with PostgreSQL, Redis and Kafka required. Kubernetes certification preferred.`

func TestExtractKeyPhrases_Empty(t *testing.T) {
	assert.Equal(t, []KeyPhrase{}, ExtractKeyPhrases("", 10))
	assert.Equal(t, []KeyPhrase{}, ExtractKeyPhrases("the and of", 10))
	assert.Equal(t, []KeyPhrase{}, ExtractKeyPhrases(sampleJob, 0))
}

func TestExtractKeyPhrases_IsolatedNode(t *testing.T) {
	phrases := ExtractKeyPhrases("python", 10)
	require.Len(t, phrases, 1)
	assert.Equal(t, "python", phrases[0].Phrase)
	assert.InDelta(t, 0.15, phrases[0].Score, 1e-12)
}

func TestExtractKeyPhrases_PairIsStationary(t *testing.T) {
	phrases := ExtractKeyPhrases("alpha beta", 10)
	require.Len(t, phrases, 2)
	assert.Equal(t, "alpha", phrases[0].Phrase)
	assert.Equal(t, "beta", phrases[1].Phrase)
	assert.InDelta(t, 1.0, phrases[0].Score, 1e-12)
	assert.InDelta(t, 1.0, phrases[1].Score, 1e-12)
}

func TestExtractKeyPhrases_HubRanksFirst(t *testing.T) {
	phrases := ExtractKeyPhrases("python data python cloud python ops python", 3)
	require.Len(t, phrases, 3)
	assert.Equal(t, "python", phrases[0].Phrase)
}

func TestExtractKeyPhrases_SortedDescending(t *testing.T) {
	phrases := ExtractKeyPhrases(sampleJob, 50)
	require.NotEmpty(t, phrases)
	for i := 1; i < len(phrases); i++ {
		assert.GreaterOrEqual(t, phrases[i-1].Score, phrases[i].Score)
	}
	assert.Equal(t, "kubernetes", phrases[0].Phrase)
}

func TestExtractKeyPhrases_TruncationIsPrefix(t *testing.T) {
	top5 := ExtractKeyPhrases(sampleJob, 5)
	top20 := ExtractKeyPhrases(sampleJob, 20)
	require.Len(t, top5, 5)
	assert.Equal(t, top20[:5], top5)
}

func TestExtractKeyPhrases_Deterministic(t *testing.T) {
	first := ExtractKeyPhrases(sampleJob, 20)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ExtractKeyPhrases(sampleJob, 20))
	}
}

func TestPhraseSet(t *testing.T) {
	set := PhraseSet([]KeyPhrase{{Phrase: "go"}, {Phrase: "rust"}})
	assert.True(t, set["go"])
	assert.False(t, set["java"])
}
