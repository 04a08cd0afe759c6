package wordlist

// Builtin returns the fixed seed word list embedded in the binary. The
// grouping comments are editorial only; duplicates across groups are
// removed during normalization.
func Builtin() []string {
	return []string{
		// Basic words
		"a", "about", "above", "across", "after", "again", "against", "all", "almost", "alone",
		"along", "already", "also", "although", "always", "among", "an", "and", "another", "any",
		"anyone", "anything", "anywhere", "are", "area", "around", "as", "ask", "at", "away",

		// Common verbs
		"be", "became", "because", "become", "been", "before", "began", "being", "below", "between",
		"both", "bring", "but", "by", "call", "came", "can", "change", "come", "could",

		// Technology terms
		"computer", "science", "algorithm", "algorithms", "data", "structure", "structures",
		"programming", "program", "programs", "function", "functions", "variable", "variables",
		"method", "methods", "class", "classes", "object", "objects", "system", "systems",

		// Frequently misspelled words
		"sentence", "receive", "separate", "definitely", "implementation", "efficient",
		"performance", "optimization", "application", "applications", "development",
		"technology", "language", "languages", "process", "processing", "analysis",

		// More common words
		"example", "examples", "text", "file", "files", "word", "words", "line", "lines",
		"error", "errors", "correct", "incorrect", "suggestion", "suggestions", "check",
		"checking", "find", "finding", "search", "searching", "match", "matching",

		// Spell checker vocabulary
		"spell", "checker", "dictionary", "misspelled", "misspelling", "correction",
		"corrections", "edit", "distance", "similarity", "character", "characters",
		"string", "strings", "compare", "comparison", "algorithm", "trie", "node", "nodes",
	}
}
