// Package spellcheck drives a dictionary from token streams: filling it from a word list, checking a document
// against it and reporting the outcome.
package spellcheck

import (
	"fmt"
	"github.com/gostonefire/wordfreq"
	"github.com/pkg/errors"
	"io"
	"time"
)

// TokenSource - Anything handing out words one at a time until io.EOF
type TokenSource interface {
	Next() (word string, err error)
}

// FillResult - Outcome of Fill
//   - Words is the number of words read
//   - Rejected is the number of words that found no room in a full hash dictionary
//   - Duration is the time spent filling
type FillResult struct {
	Words    int
	Rejected int
	Duration time.Duration
}

// CheckResult - Outcome of Check
//   - Words is the number of words read
//   - Unknown is the number of words not found in the dictionary
//   - Duration is the time spent searching
type CheckResult struct {
	Words    int
	Unknown  int
	Duration time.Duration
}

// Fill - Inserts every word from source into d. Words rejected by a full hash dictionary are counted and skipped,
// the dictionary built so far stays usable.
func Fill(d wordfreq.Dictionary, source TokenSource) (result FillResult, err error) {
	start := time.Now()
	defer func() { result.Duration = time.Since(start) }()

	var word string
	for {
		word, err = source.Next()
		if err == io.EOF {
			err = nil
			return
		}
		if err != nil {
			err = errors.Wrap(err, "reading words to fill dictionary")
			return
		}

		result.Words++
		_, err = d.Insert(word)
		if errors.Is(err, wordfreq.TableFull{}) {
			result.Rejected++
			continue
		}
		if err != nil {
			err = errors.Wrapf(err, "inserting %q", word)
			return
		}
	}
}

// Check - Searches d for every word from source and writes each word not found on its own line to out
func Check(d wordfreq.Dictionary, source TokenSource, out io.Writer) (result CheckResult, err error) {
	start := time.Now()
	defer func() { result.Duration = time.Since(start) }()

	var word string
	for {
		word, err = source.Next()
		if err == io.EOF {
			err = nil
			return
		}
		if err != nil {
			err = errors.Wrap(err, "reading words to check")
			return
		}

		result.Words++
		if d.Search(word) == 0 {
			result.Unknown++
			if _, err = fmt.Fprintln(out, word); err != nil {
				err = errors.Wrap(err, "writing unknown word")
				return
			}
		}
	}
}

// PrintBasicStats - Writes fill time, search time and number of unknown words
func PrintBasicStats(w io.Writer, fill FillResult, check CheckResult) (err error) {
	_, err = fmt.Fprintf(w, "Fill time :\t%f\nSearch time :\t%f\nUnknown words : %d\n",
		fill.Duration.Seconds(), check.Duration.Seconds(), check.Unknown)
	if err != nil {
		err = errors.Wrap(err, "writing basic stats")
	}

	return
}

// PrintEntries - Writes frequency and word for every entry of d in its natural order
func PrintEntries(w io.Writer, d wordfreq.Dictionary) (err error) {
	d.Visit(wordfreq.VisitorFunc(func(word string, frequency int) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%-4d %s\n", frequency, word)
	}))
	if err != nil {
		err = errors.Wrap(err, "writing entries")
	}

	return
}

// PrintPreOrder - Writes frequency and word for every entry of an ordered dictionary, each node before its subtrees
func PrintPreOrder(w io.Writer, od *wordfreq.OrderedDictionary) (err error) {
	od.PreOrder(wordfreq.VisitorFunc(func(word string, frequency int) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%-4d %s\n", frequency, word)
	}))
	if err != nil {
		err = errors.Wrap(err, "writing entries")
	}

	return
}
