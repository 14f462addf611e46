package openaddressing

import (
	"fmt"
	"github.com/gostonefire/wordfreq/crt"
	"github.com/gostonefire/wordfreq/internal/model"
	"io"
	"strings"
)

// PrintEntireTable - Writes one line per slot with position, frequency, probe depth and word
func (Q *OATable) PrintEntireTable(w io.Writer) (err error) {
	_, err = fmt.Fprintf(w, "%5s %5s %5s   %s\n", "Pos", "Freq", "Stats", "Word")
	if err != nil {
		return
	}
	_, err = fmt.Fprintln(w, strings.Repeat("-", 40))
	if err != nil {
		return
	}

	for i, slot := range Q.slots {
		_, err = fmt.Fprintf(w, "%5d %5d %5d   %s\n", i, slot.Frequency, slot.ProbeDepth, slot.Key)
		if err != nil {
			return
		}
	}

	return
}

// Stats - Returns the fill snapshot of the table divided into numStats checkpoints.
// Checkpoint i covers the slot index range [0, capacity * (100 * i / numStats) / 100) and is only included when
// that range is not empty and not bigger than the number of occupied slots. Empty slots inside the range count as
// placed at home. This describes the current layout of the table, not the order in which words were inserted.
func (Q *OATable) Stats(numStats int) (lines []model.StatsLine) {
	for i := 1; i <= numStats; i++ {
		percentFull := 100 * i / numStats
		entries := Q.capacity * int64(percentFull) / 100

		if entries > 0 && entries <= Q.nOccupied {
			lines = append(lines, Q.statsLine(percentFull, entries))
		}
	}

	return
}

// PrintStats - Writes the fill snapshot table as given by Stats
func (Q *OATable) PrintStats(w io.Writer, numStats int) (err error) {
	dashes := strings.Repeat("-", 53)

	_, err = fmt.Fprintf(w, "\n%s\n\n", crt.Name(Q.CollisionResolutionTechnique))
	if err != nil {
		return
	}
	_, err = fmt.Fprintf(w, "Percent   Current   Percent    Average      Maximum\n"+
		" Full     Entries   At Home   Collisions   Collisions\n%s\n", dashes)
	if err != nil {
		return
	}

	for _, l := range Q.Stats(numStats) {
		_, err = fmt.Fprintf(w, "%4d %10d %10.1f %10.2f %11d\n",
			l.PercentFull, l.Entries, l.PercentAtHome, l.AverageCollisions, l.MaxCollisions)
		if err != nil {
			return
		}
	}

	_, err = fmt.Fprintf(w, "%s\n\n", dashes)

	return
}

// statsLine - Summarizes probe depths over slots [0, entries)
func (Q *OATable) statsLine(percentFull int, entries int64) (line model.StatsLine) {
	var atHome, sum int64
	var maxDepth int

	for _, slot := range Q.slots[:entries] {
		if slot.ProbeDepth == 0 {
			atHome++
		}
		if slot.ProbeDepth > maxDepth {
			maxDepth = slot.ProbeDepth
		}
		sum += int64(slot.ProbeDepth)
	}

	line = model.StatsLine{
		PercentFull:       percentFull,
		Entries:           entries,
		PercentAtHome:     float64(atHome) * 100.0 / float64(entries),
		AverageCollisions: float64(sum) / float64(entries),
		MaxCollisions:     maxDepth,
	}

	return
}
