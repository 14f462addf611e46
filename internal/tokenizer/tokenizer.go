// Package tokenizer splits a character stream into lower-cased alphanumeric words.
package tokenizer

import (
	"bufio"
	"fmt"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
	"io"
	"unicode"
)

// DefaultMaxLength - Longest word returned, longer runs are split into several words
const DefaultMaxLength int = 255

// UTF8 - Input is read as UTF-8
const UTF8 string = "utf-8"

// Latin1 - Input is decoded from ISO 8859-1
const Latin1 string = "latin1"

// Conf - Configuration for a Tokenizer
//   - MaxLength is the longest word returned, DefaultMaxLength if zero
//   - Encoding is one of UTF8 or Latin1, UTF8 if empty
type Conf struct {
	MaxLength int
	Encoding  string
}

// Tokenizer - Reads words from a stream. A word is a maximal run of letters and digits, apostrophes inside a run
// are dropped without ending it.
type Tokenizer struct {
	reader    *bufio.Reader
	maxLength int
	lower     cases.Caser
}

// New - Returns a pointer to a new Tokenizer reading from r
func New(r io.Reader, conf Conf) (tokenizer *Tokenizer, err error) {
	switch conf.Encoding {
	case "", UTF8:
	case Latin1:
		r = charmap.ISO8859_1.NewDecoder().Reader(r)
	default:
		err = fmt.Errorf("unsupported encoding %q", conf.Encoding)
		return
	}

	maxLength := conf.MaxLength
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	tokenizer = &Tokenizer{
		reader:    bufio.NewReader(r),
		maxLength: maxLength,
		lower:     cases.Lower(language.Und),
	}

	return
}

// Next - Returns the next word in lower case.
// When the word reaches the max length it ends there and whatever follows starts the next word.
//
// It returns:
//   - word is the next word
//   - err is io.EOF once the stream is exhausted, or any other read error
func (T *Tokenizer) Next() (word string, err error) {
	var r rune

	// Skip to the start of the word
	for {
		r, _, err = T.reader.ReadRune()
		if err != nil {
			return
		}
		if isAlnum(r) {
			break
		}
	}

	runes := make([]rune, 1, 16)
	runes[0] = r

	for len(runes) < T.maxLength {
		r, _, err = T.reader.ReadRune()
		if err == io.EOF {
			err = nil
			break
		}
		if err != nil {
			return
		}

		if isAlnum(r) {
			runes = append(runes, r)
		} else if r != '\'' {
			break
		}
	}

	word = T.lower.String(string(runes))

	return
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
