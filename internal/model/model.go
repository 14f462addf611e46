package model

import "github.com/gostonefire/wordfreq/hashfunc"

// Slot - Represents one slot in the hash table
//   - Key is the stored word, empty if the slot is not in use
//   - Frequency is the number of times the word has been inserted
//   - ProbeDepth is the number of occupied slots that were skipped before the word was placed
type Slot struct {
	InUse      bool
	Key        string
	Frequency  int
	ProbeDepth int
}

// StorageParameters - Represents parameters specific for the hash table implementation
type StorageParameters struct {
	CollisionResolutionTechnique int
	RequestedSize                int64
	Capacity                     int64
	NumberOfKeys                 int64
	InternalAlgorithm            bool
}

// StatsLine - Represents one line in the fill snapshot report. All values are computed over the slot index range
// [0, Entries) of the current table layout.
//   - PercentFull is the checkpoint as a percentage of the table capacity
//   - Entries is the number of slots examined
//   - PercentAtHome is the percentage of examined slots with a probe depth of zero
//   - AverageCollisions is the mean probe depth over examined slots
//   - MaxCollisions is the biggest probe depth over examined slots
type StatsLine struct {
	PercentFull       int
	Entries           int64
	PercentAtHome     float64
	AverageCollisions float64
	MaxCollisions     int
}

// CRTConf - Is a struct to be passed in the call to NewOATable and contains configuration that affects
// the table layout.
//   - RequestedSize is the number of slots asked for, the hash algorithm may round it up
//   - CollisionResolutionTechnique is one of crt.LinearProbing or crt.DoubleHashing
//   - HashAlgorithm is an optional custom hash function(s) to use
type CRTConf struct {
	RequestedSize                int64
	CollisionResolutionTechnique int
	HashAlgorithm                hashfunc.HashAlgorithm
}
