package cefr

// SeedLexicon returns a small built-in lexicon covering common words
// across all six bands. It keeps the profiler useful when no lexicon
// database is configured; a real deployment should import a full
// wordlist into the SQLite store instead.
func SeedLexicon() MapLexicon {
	return MapLexicon{
		// A1
		"cat": 1, "dog": 1, "house": 1, "school": 1, "book": 1,
		"happy": 1, "big": 1, "small": 1, "good": 1, "bad": 1,
		"eat": 1, "play": 1, "read": 1, "water": 1, "friend": 1,
		"mother": 1, "father": 1, "day": 1, "red": 1, "sit": 1,
		"mat": 1, "fat": 1, "run": 1, "sun": 1, "tree": 1,

		// A2
		"weather": 2, "holiday": 2, "travel": 2, "hobby": 2, "market": 2,
		"visit": 2, "arrive": 2, "decide": 2, "famous": 2, "dangerous": 2,
		"healthy": 2, "practice": 2, "prepare": 2, "village": 2, "station": 2,

		// B1
		"environment": 3, "experience": 3, "opportunity": 3, "society": 3,
		"advantage": 3, "communicate": 3, "describe": 3, "develop": 3,
		"organize": 3, "perform": 3, "research": 3, "solution": 3,
		"technology": 3, "tradition": 3, "purpose": 3,

		// B2
		"analyze": 4, "emphasize": 4, "appropriate": 4, "consequence": 4,
		"significant": 4, "perspective": 4, "establish": 4, "contribute": 4,
		"demonstrate": 4, "evaluate": 4, "interpret": 4, "phenomenon": 4,
		"sustainable": 4, "controversy": 4, "implication": 4,

		// C1
		"ambiguous": 5, "coherent": 5, "comprehensive": 5, "intricate": 5,
		"notion": 5, "paradigm": 5, "profound": 5, "rhetoric": 5,
		"scrutinize": 5, "subtle": 5, "synthesis": 5, "unprecedented": 5,
		"articulate": 5, "discourse": 5, "empirical": 5,

		// C2
		"ubiquitous": 6, "ephemeral": 6, "quintessential": 6, "esoteric": 6,
		"juxtaposition": 6, "idiosyncratic": 6, "perfunctory": 6,
		"obfuscate": 6, "sycophant": 6, "anachronism": 6, "panacea": 6,
		"serendipity": 6, "magnanimous": 6, "recalcitrant": 6, "pellucid": 6,
	}
}
