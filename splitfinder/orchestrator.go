package splitfinder

import (
	"github.com/esteinig/dorado/duplexread"
	"github.com/grailbio/base/log"
)

// Split runs the ordered strategy set against read and returns the
// resulting subreads: each strategy is applied in turn to every read
// currently in the working set; a read with no detected spacers passes
// through unchanged, a read with spacers is cut and each child re-enters
// the working set as its own ExtRead, so a later strategy can further
// split what an earlier one already cut. Order is preserved: original
// parent order, and within one parent's cuts, the left-to-right order of
// its spacers.
//
// parentReadID is stamped onto every returned Read, including the sole
// survivor when no cut ever happened — matching the orchestrator contract
// that every emitted subread knows its parent, even the unsplit case.
func Split(input *duplexread.Read, settings *duplexread.Settings) []*duplexread.Read {
	working := []*duplexread.ExtRead{duplexread.NewExtRead(input)}

	for _, kind := range Strategies(settings) {
		var next []*duplexread.ExtRead
		for _, w := range working {
			spacers := kind.Find(w, settings)
			log.Debug.Printf("splitfinder: %s strategy found %d spacers in read %s", kind, len(spacers), w.Read.ReadID)
			if len(spacers) == 0 {
				next = append(next, w)
				continue
			}
			for _, child := range Cut(w.Read, spacers) {
				next = append(next, duplexread.NewExtRead(child))
			}
		}
		working = next
	}

	out := make([]*duplexread.Read, len(working))
	for i, w := range working {
		w.Read.ParentReadID = input.ReadID
		out[i] = w.Read
	}
	log.Debug.Printf("splitfinder: read %s split into %d subreads", input.ReadID, len(out))
	return out
}
