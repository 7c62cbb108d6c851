package waug

import (
	"fmt"
	"strings"
)

// String returns a Newick-style description of the tree, grounded on the
// teacher's Map.String/writeString. It is a developer aid for test
// failure messages, not a wire format: no parser reads it back.
func (t *Tree[K]) String() string {
	if t.root == nil {
		return ";"
	}
	var b strings.Builder
	writeNode[K](&b, t.root)
	return b.String()
}

func writeNode[K any](b *strings.Builder, n node[K]) {
	if n.isLeaf() {
		lf := n.(*leafNode[K])
		for i := 0; i < lf.slotuse; i++ {
			if i != 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(b, "%v", lf.slotkey[i])
		}
		return
	}
	in := n.(*innerNode[K])
	for i := 0; i < in.slotuse; i++ {
		b.WriteString("(")
		writeNode[K](b, in.slot[i].child)
		b.WriteString(")")
		fmt.Fprintf(b, "%v:%d", in.slot[i].slotkey, in.slot[i].weight)
		if i < in.slotuse-1 {
			b.WriteString(",")
		}
	}
}
