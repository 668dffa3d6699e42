// Command almanac solves seed almanacs from the command line.
//
//	almanac input.txt
//	almanac --mode ranges --workers 8 --verify input.txt
//	ALMANAC_LOGGING_LEVEL=debug almanac -i input.txt
//
// Exit status: 0 success, 1 internal error, 2 invalid input or
// configuration, 3 file not found, 130 interrupted.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kbukum/almanac/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	executed, err := cmd.ExecuteContextC(ctx)
	if err != nil {
		appErr := errors.Wrap(err)
		if executed != nil && jsonFlag(executed) {
			printJSONError(stderr, appErr)
		} else {
			printError(stderr, appErr)
		}
		return errors.ExitCodeOf(appErr)
	}
	return errors.ExitOK
}

// printError writes the message, then scalar details in key order, then the
// cause.
func printError(w io.Writer, appErr *errors.AppError) {
	fmt.Fprintf(w, "error: %s\n", appErr.Message)
	for _, k := range slices.Sorted(maps.Keys(appErr.Details)) {
		switch v := appErr.Details[k].(type) {
		case string, int, int64, bool:
			fmt.Fprintf(w, "  %s: %v\n", k, v)
		}
	}
	if appErr.Cause != nil {
		fmt.Fprintf(w, "  cause: %v\n", appErr.Cause)
	}
}

// printJSONError writes the error body as one JSON object.
func printJSONError(w io.Writer, appErr *errors.AppError) {
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		printError(w, appErr)
	}
}

func jsonFlag(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetBool("json")
	return err == nil && v
}
