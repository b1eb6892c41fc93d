package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oblaser/fdmon/pkg/model"
)

var (
	colorResetReport = "\033[0m"
	colorRedReport   = "\033[91m"
)

// maxFDsShown caps how many fd numbers a group line lists. Older fds beyond
// the cap are elided behind "..." so a leaking group stays one line.
const maxFDsShown = 7

// targetFieldWidth is the minimum width of the "<path> (<kind>)" column.
const targetFieldWidth = 40

func RenderReport(r model.Report, colorEnabled bool) {
	for _, w := range r.Warnings {
		if colorEnabled {
			fmt.Println(colorRedReport + w + colorResetReport)
		} else {
			fmt.Println(w)
		}
	}
	for _, g := range r.Groups {
		fmt.Println(FormatGroup(g))
	}
}

// FormatGroup renders one group line: the target column, the descriptor
// count in brackets, then the fd numbers in discovery order. More than
// maxFDsShown fds shows only the most recent ones, prefixed with "...".
func FormatGroup(g model.Group) string {
	var b strings.Builder

	target := g.Target.Path + " (" + g.Target.Kind.String() + ")"
	fmt.Fprintf(&b, "%-*s [%3d] ", targetFieldWidth, target, g.Count())

	fds := g.FDs
	if len(fds) > maxFDsShown {
		b.WriteString("...")
		fds = fds[len(fds)-maxFDsShown:]
	}

	for i, fd := range fds {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(fd))
	}

	return b.String()
}
