package openaddressing

import (
	"github.com/gostonefire/wordfreq/crt"
)

// probingForInsert - Is the Probing Collision Resolution Technique algorithm for finding a slot for insert.
// It returns the slot holding the key if found, otherwise the first empty slot in the probe sequence together with
// the number of occupied slots skipped on the way there.
func (Q *OATable) probingForInsert(key string) (slotNo int64, depth int, err error) {
	hf1Value := Q.hashAlgorithm.HashFunc1(key)
	hf2Value := Q.hashAlgorithm.HashFunc2(key)

	for i := int64(0); i < Q.capacity; i++ {
		slotNo = Q.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if slotNo < 0 || slotNo >= Q.capacity {
			err = crt.ProbingAlgorithm{}
			return
		}

		slot := Q.slots[slotNo]
		if !slot.InUse || slot.Key == key {
			depth = int(i)
			return
		}
	}

	// Relies on the underlying probing function to distinctively go through the entire set of slots
	err = crt.TableFull{}
	return
}

// probingForSearch - Is the Probing Collision Resolution Technique algorithm for finding an existing key.
// An empty slot in the probe sequence proves the key is absent since nothing is ever deleted.
func (Q *OATable) probingForSearch(key string) (slotNo int64, found bool) {
	hf1Value := Q.hashAlgorithm.HashFunc1(key)
	hf2Value := Q.hashAlgorithm.HashFunc2(key)

	for i := int64(0); i < Q.capacity; i++ {
		slotNo = Q.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if slotNo < 0 || slotNo >= Q.capacity {
			return
		}

		slot := Q.slots[slotNo]
		if !slot.InUse {
			return
		}
		if slot.Key == key {
			found = true
			return
		}
	}

	return
}
