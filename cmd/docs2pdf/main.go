package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args[1:], DefaultEnv()))
}

// runMain dispatches to a subcommand and returns the process exit code.
func runMain(args []string, env *Environment) int {
	// A .env file can carry DOCS2PDF_* overrides; absence is fine.
	_ = godotenv.Load()

	cmd, rest := splitCommand(args)

	switch cmd {
	case "version":
		fmt.Fprintf(env.Stdout, "go-docs2pdf %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(rest, env)
		return ExitSuccess
	case "doctor":
		return runDoctorCmd(rest, env)
	}

	// "export" or no subcommand at all.
	return runExportCmd(rest, env)
}

// runExportCmd parses flags, configures the runtime, and runs the
// export, translating errors into exit codes.
func runExportCmd(args []string, env *Environment) int {
	flags, err := parseExportFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	configureLogging(flags.misc.verbose, env.Stderr)

	// Containers lie about CPU count; automaxprocs reads cgroup limits.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		slog.Debug(fmt.Sprintf(format, args...))
	}))

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runExport(ctx, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, "Error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// splitCommand separates the leading subcommand from its arguments.
func splitCommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}
	if isCommand(args[0]) {
		return args[0], args[1:]
	}
	return "", args
}

// isCommand reports whether the argument names a known subcommand.
func isCommand(s string) bool {
	switch s {
	case "export", "doctor", "version", "help":
		return true
	}
	return false
}

// configureLogging installs a text slog handler on the given writer as
// the default logger. Verbose lowers the level to Debug.
func configureLogging(verbose bool, w io.Writer) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
