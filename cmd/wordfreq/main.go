package main

import (
	"github.com/gostonefire/wordfreq"
	"github.com/gostonefire/wordfreq/internal/spellcheck"
	"github.com/gostonefire/wordfreq/internal/tokenizer"
	"github.com/pkg/errors"
	"io"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("wordfreq: ")

	conf, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	if conf.Help {
		return
	}

	err = run(conf, os.Stdout, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
}

// run - Builds the dictionary chosen by conf from the dictionary file and produces the requested output.
// Data goes to stdout, tables and statistics to stderr.
func run(conf Config, stdout, stderr io.Writer) (err error) {
	var d wordfreq.Dictionary
	var hd *wordfreq.HashDictionary
	var od *wordfreq.OrderedDictionary

	if conf.Tree {
		kind := wordfreq.BST
		if conf.RedBlack {
			kind = wordfreq.RBT
		}
		od, err = wordfreq.NewOrderedDictionary(kind)
		d = od
	} else {
		technique := wordfreq.LinearProbing
		if conf.DoubleHashing {
			technique = wordfreq.DoubleHashing
		}
		hd, _, err = wordfreq.NewHashDictionary(conf.TableSize, technique, nil)
		d = hd
	}
	if err != nil {
		return
	}
	defer d.Clear()

	fill, err := fillFromFile(d, conf.DictionaryFile, conf.Encoding)
	if err != nil {
		return
	}
	if fill.Rejected > 0 {
		log.Printf("%d words did not fit in a table of %d slots", fill.Rejected, hd.Capacity())
	}

	if hd != nil && conf.EntireTable {
		err = hd.PrintEntireTable(stderr)
		if err != nil {
			return errors.Wrap(err, "printing entire table")
		}
	}

	if conf.CheckFile != "" {
		var check spellcheck.CheckResult
		check, err = checkFile(d, conf.CheckFile, conf.Encoding, stdout)
		if err != nil {
			return
		}
		return spellcheck.PrintBasicStats(stderr, fill, check)
	}

	switch {
	case od != nil && conf.Dot:
		err = errors.Wrap(od.WriteDot(stdout), "writing dot output")
	case hd != nil && conf.PrintStats:
		err = errors.Wrap(hd.PrintStats(stderr, conf.Snapshots), "printing stats")
	case hd != nil && conf.EntireTable:
		// the dump above is the listing
	case od != nil && conf.PreOrder:
		err = spellcheck.PrintPreOrder(stdout, od)
	default:
		err = spellcheck.PrintEntries(stdout, d)
	}

	return
}

func fillFromFile(d wordfreq.Dictionary, name, encoding string) (result spellcheck.FillResult, err error) {
	f, err := os.Open(name)
	if err != nil {
		err = errors.Wrap(err, "opening dictionary file")
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	tok, err := tokenizer.New(f, tokenizer.Conf{Encoding: encoding})
	if err != nil {
		return
	}

	return spellcheck.Fill(d, tok)
}

func checkFile(d wordfreq.Dictionary, name, encoding string, out io.Writer) (result spellcheck.CheckResult, err error) {
	f, err := os.Open(name)
	if err != nil {
		err = errors.Wrap(err, "opening file to check")
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	tok, err := tokenizer.New(f, tokenizer.Conf{Encoding: encoding})
	if err != nil {
		return
	}

	return spellcheck.Check(d, tok, out)
}
