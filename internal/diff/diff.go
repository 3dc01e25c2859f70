// Package diff renders the change a merge would make to a target file.
package diff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Result is a unified diff with line counts.
type Result struct {
	Path      string
	Text      string
	Additions int
	Deletions int
}

// contextLines is the number of unchanged lines kept around each change.
const contextLines = 3

type line struct {
	op   diffmatchpatch.Operation
	text string
}

// Compute calculates a line based unified diff between before and after.
func Compute(path, before, after string) Result {
	res := Result{Path: path}
	if before == after {
		return res
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var lines []line

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			res.Additions += countLines(d.Text)
		case diffmatchpatch.DiffDelete:
			res.Deletions += countLines(d.Text)
		}

		for _, text := range strings.SplitAfter(d.Text, "\n") {
			if text != "" {
				lines = append(lines, line{op: d.Type, text: text})
			}
		}
	}

	var builder strings.Builder
	if path != "" {
		builder.WriteString(fmt.Sprintf("--- %s\n", path))
		builder.WriteString(fmt.Sprintf("+++ %s\n", path))
	}

	writeHunks(&builder, lines)
	res.Text = builder.String()

	return res
}

// writeHunks writes changed lines with surrounding context. Runs of
// unchanged lines outside the context are replaced by a "@@" separator.
func writeHunks(builder *strings.Builder, lines []line) {
	keep := make([]bool, len(lines))

	for i, l := range lines {
		if l.op == diffmatchpatch.DiffEqual {
			continue
		}

		for j := max(0, i-contextLines); j <= min(len(lines)-1, i+contextLines); j++ {
			keep[j] = true
		}
	}

	skipping := false

	for i, l := range lines {
		if !keep[i] {
			skipping = true
			continue
		}

		if skipping || i == 0 {
			builder.WriteString("@@\n")
			skipping = false
		}

		prefix := " "
		switch l.op {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}

		builder.WriteString(prefix + l.text)
		if !strings.HasSuffix(l.text, "\n") {
			builder.WriteString("\n")
		}
	}
}

// Colorize returns the diff text with added lines in green and removed
// lines in red. Colour is dropped when the output is not a terminal.
func (r Result) Colorize() string {
	if r.Text == "" {
		return ""
	}

	add := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	hunk := color.New(color.FgCyan)

	lines := strings.SplitAfter(r.Text, "\n")

	var builder strings.Builder
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			builder.WriteString(line)
		case strings.HasPrefix(line, "@@"):
			builder.WriteString(hunk.Sprint(line))
		case strings.HasPrefix(line, "+"):
			builder.WriteString(add.Sprint(line))
		case strings.HasPrefix(line, "-"):
			builder.WriteString(del.Sprint(line))
		default:
			builder.WriteString(line)
		}
	}

	return builder.String()
}

func countLines(text string) int {
	if text == "" {
		return 0
	}

	lines := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		lines++
	}

	return lines
}
