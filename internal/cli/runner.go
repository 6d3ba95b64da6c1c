package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"undone/internal/store/jsonstore"
	"undone/internal/todo"
	"undone/internal/tui"
	"undone/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group bool // print the pending/done partition instead of launching the TUI
}

// ---------------------------------------------------
// CLI router
// ---------------------------------------------------

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		return doList(opt)

	case "add":
		if len(a) == 0 {
			ui.Fail("usage: undone add <title...>")
			return 2
		}
		return doAdd(strings.Join(a, " "))

	case "done":
		if len(a) != 1 {
			ui.Fail("usage: undone done <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("done: not a number: " + a[0])
			return 2
		}
		return doToggle(n)

	case "rm":
		if len(a) != 1 {
			ui.Fail("usage: undone rm <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("rm: not a number: " + a[0])
			return 2
		}
		return doRemove(n)

	case "clear":
		return doClear()
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`undone - a todo list with an undo banner

Usage:
  undone <subcommand> [args]

Subcommands:
  add <title...>     Add a new item (title can be multiple words)
  ls                 List items (interactive TUI; -group for plain output)
  done <index>       Toggle done for item at 1-based index
  rm <index>         Remove item at 1-based index
  clear              Remove all items

Examples:
  undone add "Buy milk"
  undone ls
  undone -group ls
  undone done 2
  undone rm 3
`)
}

// ---------------------------------------------------
// Subcommands (local JSON CRUD + TUI)
// ---------------------------------------------------

func doList(opt Options) int {
	items, err := jsonstore.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	if opt.Group {
		printGrouped(items)
		return 0
	}
	// Interactive TUI; persist on quit if anything changed.
	out, changed, err := tui.Run(items)
	if err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	if changed {
		if err := jsonstore.Save(out); err != nil {
			ui.Fail("save: " + err.Error())
			return 1
		}
		ui.OK("saved")
	}
	return 0
}

func printGrouped(items []todo.Todo) {
	t := ui.Current()
	pending, done := todo.Partition(items)

	lines := []string{t.Title.Render("Pending")}
	if len(pending) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	}
	for _, it := range pending {
		lines = append(lines, fmt.Sprintf("%s %s", t.Muted.Render(t.BoxUnchecked), it.Title))
	}
	lines = append(lines, "", t.Title.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	}
	for _, it := range done {
		lines = append(lines, fmt.Sprintf("%s %s", t.Success.Render(t.BoxChecked), t.Done.Render(it.Title)))
	}
	lines = append(lines, "", ui.ProgressBar(len(done), len(items), 28))
	fmt.Println(ui.Panel(lines))
}

func doAdd(title string) int {
	items, err := jsonstore.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	store := todo.NewStore(items...)
	if _, err := store.Add(title); err != nil {
		if errors.Is(err, todo.ErrEmptyTitle) {
			ui.Fail("add: empty title")
			return 2
		}
		ui.Fail("add: " + err.Error())
		return 1
	}
	if err := jsonstore.Save(store.List()); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("added")
	return 0
}

func doToggle(userIndex int) int {
	items, err := jsonstore.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	if userIndex < 1 || userIndex > len(items) {
		ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", len(items), userIndex))
		fmt.Fprintln(os.Stderr, ui.Current().Muted.Render("Hint: run `undone ls` to see valid indexes"))
		return 2
	}
	store := todo.NewStore(items...)
	store.ToggleDone(items[userIndex-1].ID)
	if err := jsonstore.Save(store.List()); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("toggled")
	return 0
}

func doRemove(userIndex int) int {
	items, err := jsonstore.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	if userIndex < 1 || userIndex > len(items) {
		ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", len(items), userIndex))
		fmt.Fprintln(os.Stderr, ui.Current().Muted.Render("Hint: run `undone ls` to see valid indexes"))
		return 2
	}
	store := todo.NewStore(items...)
	store.Remove(items[userIndex-1].ID)
	if err := jsonstore.Save(store.List()); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("removed")
	return 0
}

func doClear() int {
	if err := jsonstore.Save([]todo.Todo{}); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("cleared")
	return 0
}
