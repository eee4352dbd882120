package app

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomodoro/internal/osutil"
	"github.com/ayoisaiah/pomodoro/internal/ui"
	"github.com/ayoisaiah/pomodoro/store"
	"github.com/ayoisaiah/pomodoro/task"
)

// taskAction is an action that operates on the persisted task list.
type taskAction func(ctx *cli.Context, list *task.List) error

func openTasks(kv store.KV) *task.List {
	return task.Open(kv)
}

// withTasks opens the configured store and loads the task list before
// calling fn.
func withTasks(fn taskAction) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		d, err := newDeps(ctx)
		if err != nil {
			return err
		}

		defer d.Close()

		return fn(ctx, openTasks(d.kv))
	}
}

// parseIndex converts a 1-based task number from the command line to a list
// index.
func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 {
		return 0, errInvalidTaskNumber.Fmt(arg)
	}

	return n - 1, nil
}

func addTaskAction(ctx *cli.Context, list *task.List) error {
	text := strings.Join(ctx.Args().Slice(), " ")
	if strings.TrimSpace(text) == "" {
		return errEmptyTask
	}

	if err := list.Add(text); err != nil {
		return err
	}

	pterm.Success.Printfln("added task %d", list.Len())

	return nil
}

func listTasksAction(ctx *cli.Context, list *task.List) error {
	w := ctx.App.Writer

	switch {
	case ctx.Bool("json"):
		return task.Export(w, list.Tasks(), task.JSON)
	case ctx.Bool("plain"):
		list.SetRenderer(task.TextRenderer{W: w})
		list.Render()
	default:
		printTasks(w, list.Tasks())
	}

	return nil
}

// printTasks writes the list as a table.
func printTasks(w io.Writer, tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks")
		return
	}

	tableBody := make([][]string, 0, len(tasks)+1)
	tableBody = append(tableBody, []string{"#", "DONE", "TASK"})

	for i, t := range tasks {
		done := ""
		if t.Completed {
			done = ui.Green("✓")
		}

		tableBody = append(tableBody, []string{
			strconv.Itoa(i + 1),
			done,
			t.Text,
		})
	}

	ui.PrintTable(tableBody, w)
}

func indexArg(ctx *cli.Context) (int, error) {
	if ctx.NArg() != 1 {
		return 0, errTaskNumberRequired
	}

	return parseIndex(ctx.Args().First())
}

func toggleTaskAction(ctx *cli.Context, list *task.List) error {
	i, err := indexArg(ctx)
	if err != nil {
		return err
	}

	if err := list.Toggle(i); err != nil {
		return err
	}

	t := list.Tasks()[i]

	state := "not done"
	if t.Completed {
		state = "done"
	}

	pterm.Success.Printfln("marked %q as %s", t.Text, state)

	return nil
}

func deleteTaskAction(ctx *cli.Context, list *task.List) error {
	i, err := indexArg(ctx)
	if err != nil {
		return err
	}

	if err := list.Delete(i); err != nil {
		return err
	}

	pterm.Success.Printfln("deleted task %d", i+1)

	return nil
}

func clearTasksAction(ctx *cli.Context, list *task.List) error {
	confirm := ctx.Bool("yes")

	if !confirm {
		err := huh.NewConfirm().
			Title("Delete all completed tasks?").
			Affirmative("Yes").
			Negative("No").
			Value(&confirm).
			Run()
		if err != nil {
			return err
		}
	}

	if !confirm {
		return nil
	}

	before := list.Len()

	if err := list.ClearCompleted(); err != nil {
		return err
	}

	pterm.Success.Printfln("deleted %d completed tasks", before-list.Len())

	return nil
}

// formatFor picks the file format from the flag, then the file extension.
func formatFor(ctx *cli.Context, path string) string {
	if f := ctx.String("format"); f != "" {
		return strings.ToLower(f)
	}

	return task.FormatFromPath(path)
}

func exportTasksAction(ctx *cli.Context, list *task.List) error {
	path := ctx.Args().First()
	format := formatFor(ctx, path)

	// encode first so that a bad format leaves an existing file intact
	var buf bytes.Buffer

	if err := task.Export(&buf, list.Tasks(), format); err != nil {
		return err
	}

	if path == "" {
		_, err := buf.WriteTo(ctx.App.Writer)
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), osutil.FilePermission); err != nil {
		return err
	}

	pterm.Success.Printfln("exported %d tasks to %s", list.Len(), path)

	return nil
}

func importTasksAction(ctx *cli.Context, list *task.List) error {
	path := ctx.Args().First()
	if path == "" {
		return errImportFileRequired
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close()

	tasks, err := task.Import(f, formatFor(ctx, path))
	if err != nil {
		return err
	}

	if err := list.Replace(tasks); err != nil {
		return err
	}

	pterm.Success.Printfln("imported %d tasks from %s", list.Len(), path)

	return nil
}
