package crt

// TableFull - Custom error to inform that the hash table is full and can't take more keys
type TableFull struct {
	msg string
}

// Error - Used to notify that the hash table is full
func (T TableFull) Error() string {
	if T.msg == "" {
		return "hash table full"
	}
	return T.msg
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that the probing algorithm produced an unusable slot number
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}
