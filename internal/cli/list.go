package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// listCommand creates the list command, which prints the permutations only.
func (c *CLI) listCommand() *cobra.Command {
	var asTable bool

	cmd := &cobra.Command{
		Use:   "list <input>",
		Short: "Print the permutations of an input string, one per line",
		Example: `  permtrace list abc
  permtrace list aabb --table`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runList(cmd.Context(), cmd.OutOrStdout(), args[0], asTable)
		},
	}

	cmd.Flags().BoolVar(&asTable, "table", false, "render an indexed table")

	return cmd
}

func (c *CLI) runList(ctx context.Context, w io.Writer, input string, asTable bool) error {
	run, err := c.trace(ctx, input)
	if err != nil {
		return err
	}

	perms := run.Result.Permutations
	if !asTable {
		for _, p := range perms {
			fmt.Fprintln(w, p)
		}
		return nil
	}
	if len(perms) == 0 {
		printInfo(w, "Nothing to list: the input is empty")
		return nil
	}

	fmt.Fprintln(w, permutationTable(perms, c.colorEnabled()))
	return nil
}

// permutationTable renders perms as a two-column table of index and value.
func permutationTable(perms []string, color bool) string {
	rows := make([][]string, len(perms))
	for i, p := range perms {
		rows[i] = []string{strconv.Itoa(i + 1), p}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	indexStyle := lipgloss.NewStyle().Foreground(colorDim).Align(lipgloss.Right)
	valueStyle := lipgloss.NewStyle().Foreground(colorWhite)
	if !color {
		headerStyle, indexStyle, valueStyle = lipgloss.NewStyle(), lipgloss.NewStyle().Align(lipgloss.Right), lipgloss.NewStyle()
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Permutation").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle.Padding(0, 1)
			case col == 0:
				return indexStyle.Padding(0, 1)
			default:
				return valueStyle.Padding(0, 1)
			}
		}).
		String()
}
