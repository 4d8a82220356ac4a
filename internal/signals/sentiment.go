package signals

import (
	"fmt"
	"math"
	"time"

	"github.com/techflow/demandmock/internal/catalog"
)

// SentimentSnapshot is the social telemetry for one product. All fields of
// a snapshot derive from the same sampled parameter set so the sample
// mentions always reference the brand and sku the counts were drawn for.
type SentimentSnapshot struct {
	MentionsCount     int       `json:"mentions_count"`
	SentimentScore    float64   `json:"sentiment_score"`
	SentimentCategory string    `json:"sentiment_category"`
	TrendingTopics    []string  `json:"trending_topics"`
	SampleMentions    []string  `json:"sample_mentions"`
	Timeframe         string    `json:"timeframe"`
	LastUpdated       time.Time `json:"last_updated"`
}

var (
	// Brand popularity drives the mention-volume mean; unmapped brands
	// fall back to the default.
	brandMentionMeans = map[string]float64{
		"Apple":   150,
		"Samsung": 100,
		"Sony":    75,
	}
	defaultMentionMean = 50.0

	trendingTopicPool = []string{"price", "quality", "features", "availability"}

	mentionTemplates = []func(brand, sku string) string{
		func(brand, _ string) string { return fmt.Sprintf("Just got the new %s device, loving it!", brand) },
		func(_, sku string) string { return fmt.Sprintf("Thinking about upgrading to %s...", sku) },
		func(brand, _ string) string { return fmt.Sprintf("Has anyone tried the %s latest model?", brand) },
		func(_, sku string) string { return fmt.Sprintf("Great deal on %s at TechFlow!", sku) },
	}
)

// SentimentBucket maps a score to its category. Boundary scores of exactly
// 0.1 and -0.1 are neutral.
func SentimentBucket(score float64) string {
	switch {
	case score > 0.1:
		return "positive"
	case score < -0.1:
		return "negative"
	default:
		return "neutral"
	}
}

// SentimentGenerator samples per-product social telemetry.
type SentimentGenerator struct {
	catalog *catalog.Catalog
	rng     *Source
}

// NewSentimentGenerator builds a sentiment generator over the catalog.
func NewSentimentGenerator(cat *catalog.Catalog, rng *Source) *SentimentGenerator {
	return &SentimentGenerator{catalog: cat, rng: rng}
}

// Generate samples one snapshot per product. The timeframe is echoed back
// verbatim; it is a label, not a validated enumeration.
func (g *SentimentGenerator) Generate(timeframe string) map[string]SentimentSnapshot {
	now := time.Now().UTC()
	out := make(map[string]SentimentSnapshot, g.catalog.Len())

	for _, product := range g.catalog.Products() {
		mean, ok := brandMentionMeans[product.Brand]
		if !ok {
			mean = defaultMentionMean
		}

		// Score in (-1, 1): symmetric Beta(2,2) stretched over the interval,
		// rounded to 3 decimals. The category is bucketed from the rounded
		// score so the published pair can never contradict itself.
		score := math.Round((g.sampleBeta22()*2-1)*1000) / 1000

		out[product.SKU] = SentimentSnapshot{
			MentionsCount:     g.samplePoisson(mean),
			SentimentScore:    score,
			SentimentCategory: SentimentBucket(score),
			TrendingTopics:    g.sampleDistinct(trendingTopicPool, 2),
			SampleMentions:    g.sampleMentions(product.Brand, product.SKU, 3),
			Timeframe:         timeframe,
			LastUpdated:       now,
		}
	}
	return out
}

// samplePoisson draws a non-negative count with the given mean using
// Knuth's product method. The means in play are small enough that the
// exp(-mean) floor stays representable.
func (g *SentimentGenerator) samplePoisson(mean float64) int {
	threshold := math.Exp(-mean)
	k := 0
	p := 1.0
	for {
		p *= g.rng.Float64()
		if p <= threshold {
			return k
		}
		k++
	}
}

// sampleBeta22 draws from Beta(2,2) as a ratio of two Gamma(2) variates.
func (g *SentimentGenerator) sampleBeta22() float64 {
	a := g.sampleGamma2()
	b := g.sampleGamma2()
	return a / (a + b)
}

// sampleGamma2 draws from Gamma(shape=2, scale=1) as the sum of two
// exponentials.
func (g *SentimentGenerator) sampleGamma2() float64 {
	u1 := 1 - g.rng.Float64()
	u2 := 1 - g.rng.Float64()
	return -math.Log(u1 * u2)
}

// sampleDistinct draws n distinct values from the pool without replacement.
func (g *SentimentGenerator) sampleDistinct(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	perm := g.rng.Perm(len(pool))
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, pool[idx])
	}
	return out
}

// sampleMentions renders up to n distinct mention templates for one
// product.
func (g *SentimentGenerator) sampleMentions(brand, sku string, n int) []string {
	if n > len(mentionTemplates) {
		n = len(mentionTemplates)
	}
	perm := g.rng.Perm(len(mentionTemplates))
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, mentionTemplates[idx](brand, sku))
	}
	return out
}
