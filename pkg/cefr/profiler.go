package cefr

import (
	"math"
	"sort"
	"strings"

	"github.com/ecorpuz/textgauge/models"
)

// advancedThreshold is the rounded level (C1) at and above which a word
// counts as advanced vocabulary.
const advancedThreshold = 5

// Profile is the CEFR aggregate for one text.
type Profile struct {
	// Distribution counts rated words per band, keyed "A1".."C2".
	// Always fully populated, zero-filled for non-English input.
	Distribution map[string]int
	// AdvancedCount is the number of C1/C2-rated word occurrences.
	AdvancedCount int
	// RatedCount is the total number of rated word occurrences.
	RatedCount int
	// Groups holds the deduplicated vocabulary per broad tier.
	Groups models.CEFRWordGroups
}

// Profiler rates a document's vocabulary. English-only: the lexicon is
// an English resource, so non-English input short-circuits to an empty
// profile without a single lookup.
type Profiler struct {
	lexicon Lexicon
}

func NewProfiler(lexicon Lexicon) *Profiler {
	return &Profiler{lexicon: lexicon}
}

// Profile rates every alphabetic non-stopword token of doc. Words the
// lexicon does not know are skipped entirely: they appear in no band, no
// group, and no count.
func (p *Profiler) Profile(doc *models.Doc, english bool) Profile {
	profile := Profile{Distribution: emptyDistribution()}

	basic := make(map[string]struct{})
	independent := make(map[string]struct{})
	proficient := make(map[string]struct{})

	if english {
		for _, tok := range doc.Tokens {
			if !tok.IsAlpha || tok.IsStopword {
				continue
			}

			level, known := p.lexicon.Rate(tok.Text)
			if !known {
				continue
			}

			rank := int(math.Round(level))
			if rank < 1 || rank > 6 {
				continue
			}

			band := models.CEFRBands[rank-1]
			profile.Distribution[band]++
			profile.RatedCount++

			word := strings.ToLower(tok.Text)
			switch {
			case rank <= 2:
				basic[word] = struct{}{}
			case rank <= 4:
				independent[word] = struct{}{}
			default:
				proficient[word] = struct{}{}
			}

			if rank >= advancedThreshold {
				profile.AdvancedCount++
			}
		}
	}

	profile.Groups = models.CEFRWordGroups{
		Basic:       sortedKeys(basic),
		Independent: sortedKeys(independent),
		Proficient:  sortedKeys(proficient),
	}
	return profile
}

func emptyDistribution() map[string]int {
	dist := make(map[string]int, len(models.CEFRBands))
	for _, band := range models.CEFRBands {
		dist[band] = 0
	}
	return dist
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
