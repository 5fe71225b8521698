// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/archdiff/archdiff/internal/diff"
)

const dividerWidth = 80

// Options controls which of the output formats Print produces and how much
// of the diff it shows.
type Options struct {
	// SuppressCommon hides Equal lines (and, in tree mode, all-equal
	// subtrees).
	SuppressCommon bool
	// Quiet replaces all output with a single summary line, printed only
	// when the archives differ.
	Quiet bool
	// Tree renders the diff as an indented directory tree instead of one
	// line per path.
	Tree bool
	// Color enables colored state symbols.
	Color bool
}

// Printer renders an ArchiveDiff to a writer.
type Printer struct {
	out     io.Writer
	opts    Options
	divider string
	styles  map[diff.State]lipgloss.Style
}

// NewPrinter builds a Printer writing to out. A nil out falls back to
// standard output.
func NewPrinter(out io.Writer, opts Options) *Printer {
	if out == nil {
		out = os.Stdout
	}

	styles := map[diff.State]lipgloss.Style{
		diff.Equal:     lipgloss.NewStyle(),
		diff.Different: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		diff.OnlyLeft:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		diff.OnlyRight: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}

	return &Printer{
		out:     out,
		opts:    opts,
		divider: strings.Repeat("*", dividerWidth),
		styles:  styles,
	}
}

func (p *Printer) line(args ...string) {
	fmt.Fprintln(p.out, strings.Join(args, " "))
}

// paint applies the state's color style when colored output is enabled.
func (p *Printer) paint(state diff.State, s string) string {
	if !p.opts.Color {
		return s
	}
	return p.styles[state].Render(s)
}

// PrintHeader names both inputs with their on-disk sizes. Inputs that cannot
// be stat'ed (or directories, whose size is meaningless) are printed without
// one. Quiet mode prints no header.
func (p *Printer) PrintHeader(leftPath, rightPath string) {
	if p.opts.Quiet {
		return
	}
	p.line("Archive 1:", describeInput(leftPath))
	p.line("Archive 2:", describeInput(rightPath))
}

func describeInput(path string) string {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return path
	}
	return fmt.Sprintf("%s (%s)", path, humanize.Bytes(uint64(info.Size())))
}

// Print renders the diff in the configured format: the quiet one-liner, or
// the full report with dividers, an optional prefix banner, the line or tree
// body and the per-state summary.
func (p *Printer) Print(d *diff.ArchiveDiff) {
	stats := d.Stats()

	if p.opts.Quiet {
		if d.InSync() {
			return
		}
		prefix := "same"
		if d.PrefixLeft != d.PrefixRight {
			prefix = "diff"
		}
		p.line(fmt.Sprintf("Different: prefix=%s e=%d d=%d ol=%d or=%d",
			prefix,
			stats[diff.Equal],
			stats[diff.Different],
			stats[diff.OnlyLeft],
			stats[diff.OnlyRight]))
		return
	}

	p.line(p.divider)

	if d.PrefixLeft != d.PrefixRight {
		p.line("Prefixes differ:")
		p.line("Prefix 1:", d.PrefixLeft)
		p.line("Prefix 2:", d.PrefixRight)
		p.line(p.divider)
	}

	if p.opts.Tree {
		p.printTree(d)
	} else {
		p.printLines(d)
	}

	p.line(p.divider)
	p.printSummary(stats)
	p.line(p.divider)
}

// printLines emits one line per record: the path padded to the longest path
// in the diff, the state symbol and the state name.
func (p *Printer) printLines(d *diff.ArchiveDiff) {
	symbols := map[diff.State]string{
		diff.Equal:     " ",
		diff.Different: "|",
		diff.OnlyLeft:  "<",
		diff.OnlyRight: ">",
	}

	longest := 0
	for _, r := range d.Records {
		longest = max(longest, len(r.RelPath))
	}

	for _, r := range d.Records {
		if p.opts.SuppressCommon && r.State == diff.Equal {
			continue
		}
		p.line(fmt.Sprintf("%-*s %s %s",
			longest, r.RelPath,
			p.paint(r.State, symbols[r.State]),
			r.State.String()))
	}
}

// printTree emits the diff as an indented tree. Directories show '=' when
// every file below them is equal and '#' otherwise; files use the same
// symbols as the line format except that Equal is '='.
func (p *Printer) printTree(d *diff.ArchiveDiff) {
	symbols := map[diff.State]string{
		diff.Equal:     "=",
		diff.Different: "#",
		diff.OnlyLeft:  "<",
		diff.OnlyRight: ">",
	}

	var walk func(node diff.TreeNode, indent string)
	walk = func(node diff.TreeNode, indent string) {
		switch n := node.(type) {
		case *diff.DirNode:
			if p.opts.SuppressCommon && n.AllEqual {
				return
			}
			symbol := "#"
			state := diff.Different
			if n.AllEqual {
				symbol = "="
				state = diff.Equal
			}
			p.line(indent + p.paint(state, symbol) + " " + n.Name)
			for _, child := range n.Children {
				walk(child, indent+"|   ")
			}
		case *diff.FileNode:
			if p.opts.SuppressCommon && n.State == diff.Equal {
				return
			}
			p.line(indent + p.paint(n.State, symbols[n.State]) + " " + n.Name)
		}
	}

	walk(diff.BuildTree(d), "")
}

// printSummary prints the per-state counts, right-aligned to the widest
// count.
func (p *Printer) printSummary(stats map[diff.State]int) {
	width := 1
	for _, count := range stats {
		if w := len(fmt.Sprintf("%d", count)); w > width {
			width = w
		}
	}
	for _, state := range diff.States {
		p.line(fmt.Sprintf("%-11s %*d", state.String()+":", width, stats[state]))
	}
}
