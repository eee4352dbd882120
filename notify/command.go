package notify

import (
	"context"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// runCommand executes the specified command.
func runCommand(ctx context.Context, command string) error {
	cmdSlice, err := shellquote.Split(command)
	if err != nil {
		return errParseCommand.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	//nolint:gosec // the command comes from the user's own config
	cmd := exec.CommandContext(ctx, name, args...)

	return cmd.Run()
}
