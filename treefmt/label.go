package treefmt

import (
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// ellipsis marks truncated labels.
const ellipsis = "…"

// truncate shortens s to a display width of at most limit positions, including
// a trailing ellipsis. s is cut between grapheme clusters only. limit <= 0
// leaves s unchanged.
func truncate(s string, limit int, ctx *uax11.Context) string {
	if limit <= 0 {
		return s
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	if uax11.StringWidth(gstr, ctx) <= limit {
		return s
	}
	var b strings.Builder
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := uax11.Width([]byte(g), ctx)
		if w+gw+1 > limit {
			break
		}
		b.WriteString(g)
		w += gw
	}
	return b.String() + ellipsis
}
