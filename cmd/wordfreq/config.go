package main

import (
	"flag"
	"fmt"
	"github.com/gostonefire/wordfreq/internal/tokenizer"
	"io"
)

// defaultTableSize - Requested hash table size when -t is not given
const defaultTableSize int64 = 113

// defaultSnapshots - Number of fill snapshots when -s is not given
const defaultSnapshots int = 10

// Config - Everything the command line decides
type Config struct {
	DictionaryFile string
	CheckFile      string
	Tree           bool
	RedBlack       bool
	DoubleHashing  bool
	TableSize      int64
	EntireTable    bool
	Dot            bool
	PrintStats     bool
	Snapshots      int
	PreOrder       bool
	Encoding       string
	Help           bool
}

// parseConfig - Parses args (without the program name) into a Config.
// Exactly one dictionary file must be given unless help is asked for.
func parseConfig(args []string, output io.Writer) (conf Config, err error) {
	fs := flag.NewFlagSet("wordfreq", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.BoolVar(&conf.Tree, "T", false, "Use a tree instead of a hash table.")
	fs.BoolVar(&conf.RedBlack, "r", false, "Make the tree a red-black tree.")
	fs.BoolVar(&conf.DoubleHashing, "d", false, "Use double hashing instead of linear probing.")
	fs.Int64Var(&conf.TableSize, "t", defaultTableSize, "Requested hash table size, rounded up to the next prime.")
	fs.StringVar(&conf.CheckFile, "c", "", "Check the words of this file against the dictionary and print unknown words.")
	fs.BoolVar(&conf.EntireTable, "e", false, "Print the entire hash table to stderr.")
	fs.BoolVar(&conf.Dot, "o", false, "Print a DOT description of the tree.")
	fs.BoolVar(&conf.PrintStats, "p", false, "Print hash table fill snapshots to stderr.")
	fs.IntVar(&conf.Snapshots, "s", defaultSnapshots, "Number of fill snapshots printed with -p.")
	fs.BoolVar(&conf.PreOrder, "i", false, "List tree entries in pre-order instead of in-order.")
	fs.StringVar(&conf.Encoding, "enc", tokenizer.UTF8, "Encoding of input files, utf-8 or latin1.")
	fs.BoolVar(&conf.Help, "h", false, "Print this help.")

	err = fs.Parse(args)
	if err != nil {
		return
	}

	if conf.Help {
		fs.Usage()
		return
	}

	if fs.NArg() != 1 {
		err = fmt.Errorf("expected exactly one dictionary file, got %d arguments", fs.NArg())
		return
	}
	conf.DictionaryFile = fs.Arg(0)

	if conf.TableSize <= 0 {
		err = fmt.Errorf("table size must be a positive value higher than 0 (zero)")
		return
	}
	if conf.Snapshots <= 0 {
		err = fmt.Errorf("number of snapshots must be a positive value higher than 0 (zero)")
		return
	}

	return
}
