package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GloriousEggroll/proton-wine/internal/debug"
	"github.com/GloriousEggroll/proton-wine/internal/options"
	"github.com/GloriousEggroll/proton-wine/internal/version"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

var (
	colorBanner  = color.New(color.Bold).SprintFunc()
	colorHeading = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// printUsage writes the banner, the invocation synopsis, and the option
// table to w. Colors are applied only when w is a terminal.
func printUsage(w io.Writer, invocation string, table options.Table) {
	useColor := writerIsTerminal(w)

	banner := version.Banner()
	if useColor {
		banner = colorBanner(banner)
	}
	fmt.Fprintf(w, "%s\n\n", banner)
	fmt.Fprintf(w, "Usage: %s [options] [--] program_name [arguments]\n", invocation)
	fmt.Fprintln(w, "The -- has to be used if you specify arguments (of the program)")
	fmt.Fprintln(w)

	heading := "Options:"
	if useColor {
		heading = colorHeading(heading)
	}
	fmt.Fprintln(w, heading)
	for _, opt := range table {
		fmt.Fprintf(w, "   %s\n", opt.Usage)
	}
}

// printDebugSyntax writes the --debugmsg grammar reminder with the
// class grid.
func printDebugSyntax(w io.Writer) {
	fmt.Fprintln(w, "Syntax: --debugmsg [class]+xxx,...  or --debugmsg [class]-xxx,...")
	fmt.Fprintln(w, "Example: --debugmsg +all,warn-heap")
	fmt.Fprintln(w, "    turn on all messages except warning heap messages")
	fmt.Fprintln(w, "Available message classes:")

	var grid strings.Builder
	for _, name := range debug.ClassNames() {
		grid.WriteString(runewidth.FillRight(name, 9))
	}
	fmt.Fprintf(w, "%s\n", strings.TrimRight(grid.String(), " "))
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
