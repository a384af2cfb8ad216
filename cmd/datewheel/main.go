package main

import (
	"os"
	"strings"

	"datewheel-cli/internal/calendar"
	"datewheel-cli/internal/cli"
)

func isDateArg(s string) bool {
	_, err := calendar.ParseDate(s)
	return err == nil
}

func rewriteDirectDateArgs(argv []string) []string {
	// Convenience: `datewheel 2024-02-29` works like `datewheel check 2024-02-29`.
	//
	// Cobra treats the first non-flag token as a subcommand, so argv is rewritten
	// before parsing. Persistent flags may come first, so look for the first
	// positional token rather than argv[1].
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--day":      true,
		"--month":    true,
		"--year":     true,
		"--min-year": true,
		"--max-year": true,
		"--visible":  true,
		"--locale":   true,
		"--journal":  true,
		"--log-file": true,
		"--format":   true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isDateArg(argv[i+1]) {
				return insertCheck(argv, i+1)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}

		// First positional token.
		if isDateArg(a) {
			return insertCheck(argv, i)
		}
		return argv
	}

	return argv
}

func insertCheck(argv []string, at int) []string {
	out := make([]string, 0, len(argv)+1)
	out = append(out, argv[:at]...)
	out = append(out, "check")
	return append(out, argv[at:]...)
}

func main() {
	os.Args = rewriteDirectDateArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
