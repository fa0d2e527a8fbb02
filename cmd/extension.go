package cmd

import (
	"errors"
	"os"
	"os/exec"
)

// ExtensionPrefix is the prefix of the executables extending hld.
const ExtensionPrefix = "hld-"

// RunExtension attempts to find and execute an external hld-<subcommand> binary.
// The configuration is passed in the HLD_* environment variables.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := ExtensionPrefix + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		logger.Debug().Err(err).Str("extension", name).Msg("extension not found in PATH")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), config.environ()...)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		logger.Error().Err(err).Str("extension", name).Msg("cannot execute extension")
		return true, 1
	}
	return true, 0
}
