package wordfreq

import "github.com/gostonefire/wordfreq/crt"

// TableFull - Returned by HashDictionary.Insert when a new word finds no empty slot
type TableFull = crt.TableFull

// ProbingAlgorithm - Returned by HashDictionary.Insert when a custom hash algorithm probes outside the table
type ProbingAlgorithm = crt.ProbingAlgorithm
