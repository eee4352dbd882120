package task

import (
	"fmt"
	"io"
)

// TextRenderer writes the list as plain numbered lines.
type TextRenderer struct {
	W io.Writer
}

func (r TextRenderer) Render(tasks []Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(r.W, "No tasks")
		return
	}

	for i, t := range tasks {
		check := " "
		if t.Completed {
			check = "x"
		}

		fmt.Fprintf(r.W, "%d. [%s] %s\n", i+1, check, t.Text)
	}
}
