// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lexical builds term co-occurrence chains over a query and its
// collected snippets and scores snippets by lexical relevance.
package lexical

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// Analyzer normalizes raw text into an ordered sequence of terms:
// lowercased, alphabetic, non-stopword lemmas. The chain model and scorer
// never inspect raw text themselves.
type Analyzer interface {
	Terms(text string) []string
}

// NewAnalyzer selects the richest normalization backend available. When
// lexiconPath names a readable lexicon file its stopwords and lemma
// overrides are used; otherwise the built-in stopword list and suffix
// stemmer apply. Load failures are reported on warn and never fatal.
func NewAnalyzer(lexiconPath string, warn io.Writer) Analyzer {
	if lexiconPath != "" {
		a, err := loadLexicon(lexiconPath)
		if err == nil {
			return a
		}
		fmt.Fprintf(warn, "warning: lexicon %s unusable, using built-in analyzer: %v\n", lexiconPath, err)
	}
	return &stemAnalyzer{stop: builtinStopwords}
}

// Plain returns the minimal tokenizer: lowercased alphabetic words with no
// stopword filtering or stemming. Last resort of the fallback chain.
func Plain() Analyzer { return plainAnalyzer{} }

// tokenize lowercases text and splits it into purely alphabetic words.
// Tokens containing digits or other non-letter runes are dropped, not split
// around: "covid19" is not a term.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
	var words []string
	for _, f := range fields {
		alpha := true
		for _, r := range f {
			if !unicode.IsLetter(r) {
				alpha = false
				break
			}
		}
		if alpha && f != "" {
			words = append(words, f)
		}
	}
	return words
}

type plainAnalyzer struct{}

func (plainAnalyzer) Terms(text string) []string { return tokenize(text) }

// stemAnalyzer filters stopwords and applies a small suffix stemmer.
type stemAnalyzer struct {
	stop map[string]struct{}
}

func (a *stemAnalyzer) Terms(text string) []string {
	var terms []string
	for _, w := range tokenize(text) {
		if len(w) < 2 {
			continue
		}
		if _, isStop := a.stop[w]; isStop {
			continue
		}
		terms = append(terms, stem(w))
	}
	return terms
}

// stem strips one common suffix when enough of a stem remains. Not a full
// Porter stemmer; just enough to fold obvious inflections so that chain
// links line up across query and snippets.
func stem(word string) string {
	suffixes := []string{"ingly", "edly", "ing", "ness", "ment", "ies", "ed", "ly", "es", "s"}
	for _, suf := range suffixes {
		if strings.HasSuffix(word, suf) && len(word)-len(suf) >= 3 {
			return word[:len(word)-len(suf)]
		}
	}
	return word
}

// lexiconAnalyzer uses stopwords and lemma overrides loaded from a file.
// Terms without an override fall through to the suffix stemmer.
type lexiconAnalyzer struct {
	stop   map[string]struct{}
	lemmas map[string]string
}

func (a *lexiconAnalyzer) Terms(text string) []string {
	var terms []string
	for _, w := range tokenize(text) {
		if len(w) < 2 {
			continue
		}
		if _, isStop := a.stop[w]; isStop {
			continue
		}
		if lemma, ok := a.lemmas[w]; ok {
			terms = append(terms, lemma)
			continue
		}
		terms = append(terms, stem(w))
	}
	return terms
}

// lexiconFile is the on-disk lexicon shape.
type lexiconFile struct {
	Stopwords []string          `json:"stopwords"`
	Lemmas    map[string]string `json:"lemmas"`
}

func loadLexicon(path string) (*lexiconAnalyzer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lf lexiconFile
	if err := json.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parsing lexicon: %w", err)
	}
	stop := make(map[string]struct{}, len(lf.Stopwords))
	for _, w := range lf.Stopwords {
		stop[strings.ToLower(w)] = struct{}{}
	}
	lemmas := make(map[string]string, len(lf.Lemmas))
	for k, v := range lf.Lemmas {
		lemmas[strings.ToLower(k)] = strings.ToLower(v)
	}
	return &lexiconAnalyzer{stop: stop, lemmas: lemmas}, nil
}

// builtinStopwords mixes high-frequency English and Indonesian function
// words; the catalog domain is Indonesian journals but provider snippets
// often arrive in English.
var builtinStopwords = func() map[string]struct{} {
	words := []string{
		// English
		"a", "an", "and", "are", "as", "at", "be", "by", "for", "from",
		"has", "he", "in", "is", "it", "its", "of", "on", "or", "that",
		"the", "to", "was", "were", "will", "with", "this", "but", "they",
		"have", "had", "what", "when", "where", "who", "which", "their",
		"if", "each", "do", "not", "no", "so", "can",
		// Indonesian
		"dan", "yang", "di", "ke", "dari", "untuk", "pada", "dengan",
		"ini", "itu", "adalah", "dalam", "akan", "atau", "juga", "oleh",
		"sebagai", "tidak", "telah", "dapat", "secara", "serta",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()
