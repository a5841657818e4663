// Envsync pushes the entries of a local env file into Vercel's environment
// variable store, one `vercel env add` invocation per key. Requires a logged
// in vercel CLI on PATH.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

func main() {
	file := flag.String("file", ".env", "path to the env file to sync")
	target := flag.String("env", "production", "vercel environment to add the variables to")
	flag.Parse()

	vars, err := godotenv.Read(*file)
	if err != nil {
		slog.Error("failed to read env file", "file", *file, "error", err)
		os.Exit(1)
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	failed := 0
	for _, key := range keys {
		if err := addVercelEnv(key, vars[key], *target); err != nil {
			slog.Error("failed to sync variable", "key", key, "error", err)
			failed++
			continue
		}
		slog.Info("synced variable", "key", key, "env", *target)
	}

	if failed > 0 {
		slog.Error("sync finished with failures", "failed", failed, "total", len(keys))
		os.Exit(1)
	}
}

// addVercelEnv pipes the value over stdin, the vercel CLI prompts for it
// rather than taking it as an argument.
func addVercelEnv(key string, value string, target string) error {
	cmd := exec.Command("vercel", "env", "add", key, target)
	cmd.Stdin = strings.NewReader(value)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("vercel env add %s: %w: %s", key, err, strings.TrimSpace(string(out)))
	}
	return nil
}
