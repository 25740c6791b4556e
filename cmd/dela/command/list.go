package command

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/delacli/dela/internal/discovery"
	"github.com/delacli/dela/internal/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Discover tasks in the current directory and print them",
	RunE:  runList,
}

// nameColumn is the fixed padding column unique_name is left-justified
// into before the " - " separator (spec.md §6).
const nameColumn = 28

func runList(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	result := discovery.Discover(cwd)

	out := cmd.OutOrStdout()
	noColor := !isTerminal(os.Stdout)
	markColor := color.New(color.FgYellow)
	missingColor := color.New(color.FgRed)
	if noColor {
		markColor.DisableColor()
		missingColor.DisableColor()
	}

	sourceCounts := make(map[string]int, len(result.Tasks))
	for _, t := range result.Tasks {
		sourceCounts[t.SourceName]++
	}

	for _, t := range result.Tasks {
		line := fmt.Sprintf("  %-*s - (%s)", nameColumn, t.UniqueName, t.Runner.ShortName())
		if t.Shadow != nil {
			switch t.Shadow.Kind {
			case types.ShadowShellBuiltin:
				line += markColor.Sprint(" †")
			case types.ShadowPathExecutable:
				line += markColor.Sprint(" ‡")
			}
		}
		if sourceCounts[t.SourceName] >= 2 {
			line += markColor.Sprint(" ‖")
		}
		if !t.RunnerAvailable {
			line += missingColor.Sprint(" [runner not found]")
		}
		if t.Description != "" {
			line += " " + t.Description
		}
		fmt.Fprintln(out, line)
	}

	printFootnotes(out, result.Tasks, cwd)

	if len(result.Errors) > 0 {
		fmt.Fprintln(out, "\nParse errors:")
		for _, e := range result.Errors {
			fmt.Fprintln(out, " ", e)
		}
	}
	return nil
}

// printFootnotes prints the duplicate-name (‖) and shadow (†/‡) footnote
// sections described in spec.md §6 / Scenario A. File paths in the
// duplicate-name footnote are printed relative to cwd per the §6 grammar's
// "<relative_path>".
func printFootnotes(out io.Writer, tasks []types.Task, cwd string) {
	bySource := make(map[string][]types.Task)
	var order []string
	for _, t := range tasks {
		if _, seen := bySource[t.SourceName]; !seen {
			order = append(order, t.SourceName)
		}
		bySource[t.SourceName] = append(bySource[t.SourceName], t)
	}

	var dupLines []string
	var shadowLines []string
	for _, name := range order {
		group := bySource[name]
		if len(group) >= 2 {
			rels := make([]string, 0, len(group))
			for _, t := range group {
				rels = append(rels, fmt.Sprintf("Use '%s' for %s version in %s", t.UniqueName, t.Runner.ShortName(), relativeTo(cwd, t.FilePath)))
			}
			sort.Strings(rels)
			dupLines = append(dupLines, rels...)
		}
		for _, t := range group {
			if t.Shadow == nil {
				continue
			}
			switch t.Shadow.Kind {
			case types.ShadowShellBuiltin:
				shadowLines = append(shadowLines, fmt.Sprintf("† task '%s' shadowed by %s shell builtin", t.SourceName, t.Shadow.ShellName))
			case types.ShadowPathExecutable:
				shadowLines = append(shadowLines, fmt.Sprintf("‡ task '%s' shadowed by executable at %s", t.SourceName, t.Shadow.ExecutablePath))
			}
		}
	}

	if len(dupLines) > 0 {
		fmt.Fprintln(out, "\nDuplicate task names (‖):")
		for _, l := range dupLines {
			fmt.Fprintln(out, l)
		}
	}
	if len(shadowLines) > 0 {
		fmt.Fprintln(out, "\nShadowed tasks:")
		for _, l := range shadowLines {
			fmt.Fprintln(out, l)
		}
	}
}

// relativeTo returns path relative to base when possible, falling back to
// the absolute path if it lies outside base.
func relativeTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || len(rel) >= 2 && rel[:2] == ".." {
		return path
	}
	return rel
}
