package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

// Write renders the bag's diagnostics to w, one per line, in the bag's
// current order. Colors honour the global color.NoColor setting.
func Write(w io.Writer, b *Bag) {
	for _, d := range b.Items() {
		label := d.Severity.String()
		switch d.Severity {
		case SevError:
			label = errorColor.Sprint(label)
		case SevWarning:
			label = warningColor.Sprint(label)
		default:
			label = infoColor.Sprint(label)
		}
		fmt.Fprintf(w, "%s %s: %s: %s\n", label, d.Code, d.Symbol, d.Message)
	}
}
