package crt

// LinearProbing - Collision Resolution Technique stepping one slot at a time from the home slot
const LinearProbing int = 1

// DoubleHashing - Collision Resolution Technique where the step between probes is derived from the key
const DoubleHashing int = 2

// Name - Returns the human readable name of a Collision Resolution Technique
func Name(technique int) string {
	switch technique {
	case LinearProbing:
		return "Linear Probing"
	case DoubleHashing:
		return "Double Hashing"
	default:
		return "Unknown"
	}
}
