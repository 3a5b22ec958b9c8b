// Package textseg splits text into runs by writing script so that each
// run can be drawn with a script-appropriate font. The split is a
// lossless, order-preserving partition: concatenating the run texts
// reproduces the input exactly.
package textseg

import "github.com/go-text/typesetting/language"

// Run is a maximal stretch of text sharing one script.
type Run struct {
	Text   string
	Script language.Script
}

// Segment partitions s into script runs. Script-neutral characters
// (Common, Inherited, Unknown) never force a break; they attach to
// whichever run is open. A character of a different concrete script
// starts a new run.
func Segment(s string) []Run {
	var runs []Run
	var cur []rune
	var last language.Script

	for _, r := range s {
		sc := language.LookupScript(r)
		switch {
		case len(cur) == 0:
			cur = append(cur, r)
			last = sc
		case sc == last || neutral(sc):
			cur = append(cur, r)
		default:
			runs = append(runs, Run{Text: string(cur), Script: last})
			cur = []rune{r}
			last = sc
		}
	}
	if len(cur) > 0 {
		runs = append(runs, Run{Text: string(cur), Script: last})
	}
	return runs
}

func neutral(sc language.Script) bool {
	return sc == language.Common || sc == language.Inherited || sc == language.Unknown
}
