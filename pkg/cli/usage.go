package cli

import (
	"fmt"
	"io"

	"github.com/dixieflatline76/Splitter/asset"
)

// PrintUsage prints the help message.
func PrintUsage(w io.Writer) {
	text, err := asset.NewManager().GetText("usage.txt")
	if err != nil {
		fmt.Fprintln(w, "usage: splitter -in <image> [-split pct] [-out dir]")
		return
	}
	fmt.Fprint(w, text)
}
