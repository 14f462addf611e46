//go:build unit

package spellcheck

import (
	"bytes"
	"errors"
	"github.com/gostonefire/wordfreq"
	"github.com/gostonefire/wordfreq/internal/tokenizer"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

// brokenSource - A token source failing after handing out its words
type brokenSource struct {
	words []string
}

func (B *brokenSource) Next() (word string, err error) {
	if len(B.words) == 0 {
		err = errors.New("disk on fire")
		return
	}
	word, B.words = B.words[0], B.words[1:]
	return
}

// brokenWriter - A writer that always fails
type brokenWriter struct{}

func (B brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("pipe closed")
}

func newSource(t *testing.T, text string) *tokenizer.Tokenizer {
	tok, err := tokenizer.New(strings.NewReader(text), tokenizer.Conf{})
	assert.NoError(t, err, "creates tokenizer")
	return tok
}

func TestFill(t *testing.T) {
	t.Run("fills dictionary with every word", func(t *testing.T) {
		// Prepare
		d, err := wordfreq.NewOrderedDictionary(wordfreq.RBT)
		assert.NoError(t, err, "creates dictionary")

		// Execute
		result, err := Fill(d, newSource(t, "The cat sat on the mat."))

		// Check
		assert.NoError(t, err, "fills")
		assert.Equal(t, 6, result.Words, "six words read")
		assert.Zero(t, result.Rejected, "nothing rejected")
		assert.Equal(t, 2, d.Search("the"), "the counted twice")
	})

	t.Run("counts words rejected by a full table", func(t *testing.T) {
		// Prepare
		d, info, err := wordfreq.NewHashDictionary(3, wordfreq.DoubleHashing, nil)
		assert.NoError(t, err, "creates dictionary")
		assert.Equal(t, int64(3), info.Capacity, "three slots")

		// Execute
		result, err := Fill(d, newSource(t, "one two three four five one"))

		// Check
		assert.NoError(t, err, "fills")
		assert.Equal(t, 6, result.Words, "six words read")
		assert.Equal(t, 2, result.Rejected, "four and five rejected")
		assert.Equal(t, 2, d.Search("one"), "one counted twice")
		assert.Equal(t, 0, d.Search("five"), "five absent")
	})

	t.Run("error when source fails", func(t *testing.T) {
		// Prepare
		d, err := wordfreq.NewOrderedDictionary(wordfreq.BST)
		assert.NoError(t, err, "creates dictionary")

		// Execute
		result, err := Fill(d, &brokenSource{words: []string{"kept"}})

		// Check
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "disk on fire", "cause kept")
		assert.Equal(t, 1, result.Words, "one word read")
		assert.Equal(t, 1, d.Search("kept"), "earlier words stay")
	})
}

func TestCheck(t *testing.T) {
	t.Run("reports unknown words", func(t *testing.T) {
		// Prepare
		d, _, err := wordfreq.NewHashDictionary(113, wordfreq.LinearProbing, nil)
		assert.NoError(t, err, "creates dictionary")
		_, err = Fill(d, newSource(t, "the cat sat on the mat"))
		assert.NoError(t, err, "fills")
		var out bytes.Buffer

		// Execute
		result, err := Check(d, newSource(t, "The dog sat on the log"), &out)

		// Check
		assert.NoError(t, err, "checks")
		assert.Equal(t, 6, result.Words, "six words read")
		assert.Equal(t, 2, result.Unknown, "two unknown")
		assert.Equal(t, "dog\nlog\n", out.String(), "unknown words listed")
	})

	t.Run("error when output fails", func(t *testing.T) {
		// Prepare
		d, err := wordfreq.NewOrderedDictionary(wordfreq.BST)
		assert.NoError(t, err, "creates dictionary")

		// Execute
		_, err = Check(d, newSource(t, "unknown"), brokenWriter{})

		// Check
		assert.Error(t, err)
	})
}

func TestPrintBasicStats(t *testing.T) {
	t.Run("prints times and unknown words", func(t *testing.T) {
		// Prepare
		var out bytes.Buffer

		// Execute
		err := PrintBasicStats(&out, FillResult{}, CheckResult{Unknown: 7})

		// Check
		assert.NoError(t, err, "prints")
		assert.Equal(t, "Fill time :\t0.000000\nSearch time :\t0.000000\nUnknown words : 7\n", out.String(), "stats")
	})
}

func TestPrintEntries(t *testing.T) {
	t.Run("prints tree entries in order", func(t *testing.T) {
		// Prepare
		d, err := wordfreq.NewOrderedDictionary(wordfreq.RBT)
		assert.NoError(t, err, "creates dictionary")
		_, err = Fill(d, newSource(t, "b a c a"))
		assert.NoError(t, err, "fills")
		var out bytes.Buffer

		// Execute
		err = PrintEntries(&out, d)

		// Check
		assert.NoError(t, err, "prints")
		assert.Equal(t, "2    a\n1    b\n1    c\n", out.String(), "entries")
	})

	t.Run("prints tree entries in pre order", func(t *testing.T) {
		// Prepare
		d, err := wordfreq.NewOrderedDictionary(wordfreq.BST)
		assert.NoError(t, err, "creates dictionary")
		_, err = Fill(d, newSource(t, "b c a"))
		assert.NoError(t, err, "fills")
		var out bytes.Buffer

		// Execute
		err = PrintPreOrder(&out, d)

		// Check
		assert.NoError(t, err, "prints")
		assert.Equal(t, "1    b\n1    a\n1    c\n", out.String(), "entries")
	})

	t.Run("error when output fails", func(t *testing.T) {
		// Prepare
		d, err := wordfreq.NewOrderedDictionary(wordfreq.BST)
		assert.NoError(t, err, "creates dictionary")
		_, _ = d.Insert("word")

		// Execute
		err = PrintEntries(brokenWriter{}, d)

		// Check
		assert.Error(t, err)
	})
}
