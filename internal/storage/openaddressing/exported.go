package openaddressing

import (
	"fmt"
	"github.com/gostonefire/wordfreq/crt"
	"github.com/gostonefire/wordfreq/hashfunc"
	"github.com/gostonefire/wordfreq/internal/hash"
	"github.com/gostonefire/wordfreq/internal/model"
)

// OATable - Represents an in memory implementation of the Open Addressing Collision Resolution Techniques.
// It uses one fixed array of slots where each slot holds one word. In case of a collision, it probes through
// the table using a collision resolution algorithm, looking for an empty slot, and assigns the free slot to the word.
// Once all slots are occupied the table will accept no more new words.
type OATable struct {
	slots                        []model.Slot
	requestedSize                int64
	capacity                     int64
	hashAlgorithm                hashfunc.HashAlgorithm
	internalAlgorithm            bool
	CollisionResolutionTechnique int
	nOccupied                    int64
}

// NewOATable - Returns a pointer to a new instance of the Open Addressing table implementation.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting the table layout
//
// It returns:
//   - oaTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewOATable(crtConf model.CRTConf) (oaTable *OATable, err error) {
	if crtConf.RequestedSize <= 0 {
		err = fmt.Errorf("requested size must be a positive value higher than 0 (zero)")
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		switch crtConf.CollisionResolutionTechnique {
		case crt.LinearProbing:
			crtConf.HashAlgorithm = hash.NewLinearProbingHashAlgorithm(crtConf.RequestedSize)
		case crt.DoubleHashing:
			crtConf.HashAlgorithm = hash.NewDoubleHashAlgorithm(crtConf.RequestedSize)
		default:
			err = fmt.Errorf("unknown collision resolution technique %d", crtConf.CollisionResolutionTechnique)
			return
		}
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(crtConf.RequestedSize)
	}

	capacity := crtConf.HashAlgorithm.GetTableSize()
	if capacity <= 0 {
		err = fmt.Errorf("hash algorithm reports an invalid table size %d", capacity)
		return
	}

	oaTable = &OATable{
		slots:                        make([]model.Slot, capacity),
		requestedSize:                crtConf.RequestedSize,
		capacity:                     capacity,
		hashAlgorithm:                crtConf.HashAlgorithm,
		internalAlgorithm:            internalAlg,
		CollisionResolutionTechnique: crtConf.CollisionResolutionTechnique,
		nOccupied:                    0,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from OATable
func (Q *OATable) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: Q.CollisionResolutionTechnique,
		RequestedSize:                Q.requestedSize,
		Capacity:                     Q.capacity,
		NumberOfKeys:                 Q.nOccupied,
		InternalAlgorithm:            Q.internalAlgorithm,
	}

	return
}

// Capacity - Returns the fixed number of slots in the table
func (Q *OATable) Capacity() int64 {
	return Q.capacity
}

// NumKeys - Returns the number of occupied slots
func (Q *OATable) NumKeys() int64 {
	return Q.nOccupied
}

// Insert - Adds the word to the table with frequency 1 or, if it is already present, increments its frequency.
//   - key is the word to insert
//
// It returns:
//   - frequency is the frequency of the word after the insertion
//   - err is either of type crt.TableFull, crt.ProbingAlgorithm or nil if everything went ok
func (Q *OATable) Insert(key string) (frequency int, err error) {
	slotNo, depth, err := Q.probingForInsert(key)
	if err != nil {
		return
	}

	slot := &Q.slots[slotNo]
	if slot.InUse {
		slot.Frequency++
		frequency = slot.Frequency
		return
	}

	slot.InUse = true
	slot.Key = key
	slot.Frequency = 1
	slot.ProbeDepth = depth
	Q.nOccupied++
	frequency = 1

	return
}

// Search - Returns the frequency of the word, or 0 (zero) if the word is not in the table.
// Absence is a normal outcome and not an error.
func (Q *OATable) Search(key string) (frequency int) {
	slotNo, found := Q.probingForSearch(key)
	if found {
		frequency = Q.slots[slotNo].Frequency
	}

	return
}

// Slots - Returns a copy of all slots in slot order, occupied or not
func (Q *OATable) Slots() (slots []model.Slot) {
	slots = make([]model.Slot, len(Q.slots))
	_ = copy(slots, Q.slots)

	return
}

// Walk - Calls fn with key and frequency for every occupied slot in slot order
func (Q *OATable) Walk(fn func(key string, frequency int)) {
	for _, slot := range Q.slots {
		if slot.InUse {
			fn(slot.Key, slot.Frequency)
		}
	}
}

// Clear - Releases all stored words, leaving an empty table with the same capacity
func (Q *OATable) Clear() {
	for i := range Q.slots {
		Q.slots[i] = model.Slot{}
	}
	Q.nOccupied = 0
}
