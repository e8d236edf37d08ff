package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"xetasuite/internal/console"
	"xetasuite/internal/models"
)

// runList drives a list command through the shared list controller, so the
// terminal views get the same query handling as every other listing surface.
func runList[T any](ctx context.Context, fetch console.ListFetcher[T], params models.ListParams, header []string, row func(T) []string) {
	ctrl := console.NewListController(fetch)
	ctrl.SetParams(params)
	ctrl.Refresh(ctx)
	if msg := ctrl.Err(); msg != "" {
		failResult(msg, nil)
	}

	items := ctrl.Items()
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, row(item))
	}
	table(header, rows, ctrl.Meta())
}

// table prints rows in aligned columns, then a pagination footer.
func table(header []string, rows [][]string, meta models.ListMeta) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	printRow(w, header)
	for _, row := range rows {
		printRow(w, row)
	}
	w.Flush()
	fmt.Printf("page %d/%d, %d total\n", meta.CurrentPage, meta.LastPage, meta.Total)
}

func printRow(w *tabwriter.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, cell)
	}
	fmt.Fprintln(w)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// argID parses the required positional ID of get/update/delete commands.
func argID(fs interface{ Arg(int) string }, name string) int {
	raw := fs.Arg(0)
	if raw == "" {
		fatalf("%s requires an id argument", name)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		fatalf("invalid id %q", raw)
	}
	return id
}
