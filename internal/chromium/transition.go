package chromium

import (
	"github.com/mlucas/webtrail/internal/timeline"
)

// coreTypeMask selects the core transition type from the low bits.
const coreTypeMask = 0xFF

// Core transition types, indexed by the value of the low byte. These follow
// the Chromium page-transition convention.
var coreTypes = [...]string{
	0:  "link",
	1:  "typed",
	2:  "auto_bookmark",
	3:  "auto_subframe",
	4:  "manual_subframe",
	5:  "generated",
	6:  "start_page",
	7:  "form_submit",
	8:  "reload",
	9:  "keyword",
	10: "keyword_generated",
}

// qualifierBit pairs a single high-bit flag with its name. Each bit is tested
// independently; unknown high bits are ignored.
type qualifierBit struct {
	mask uint32
	name string
}

var qualifierBits = []qualifierBit{
	{0x01000000, "chain_start"},
	{0x02000000, "chain_end"},
	{0x04000000, "client_redirect"},
	{0x08000000, "server_redirect"},
	{0x10000000, "is_redirect"},
	{0x20000000, "from_address_bar"},
	{0x40000000, "home_page"},
	{0x80000000, "user_gesture"},
}

// DecodeTransition decodes a visit's transition bitmask into a core type and
// a set of qualifier flags. It is pure and total over the 32-bit input domain:
// an unrecognized core value maps to "unknown" rather than failing.
func DecodeTransition(mask uint32) timeline.Transition {
	core := "unknown"
	if v := mask & coreTypeMask; int(v) < len(coreTypes) {
		core = coreTypes[v]
	}

	qualifiers := []string{}
	for _, q := range qualifierBits {
		if mask&q.mask != 0 {
			qualifiers = append(qualifiers, q.name)
		}
	}

	return timeline.Transition{CoreType: core, Qualifiers: qualifiers}
}
