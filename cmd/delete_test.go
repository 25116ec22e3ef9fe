package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

// corruptPortfolio writes an unparseable portfolio file into a fresh store
// directory and points the store there.
func corruptPortfolio(t *testing.T, name string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(portfolioDirEnv, dir)
	file := filepath.Join(dir, name+".jsonl")
	if err := os.WriteFile(file, []byte("this is not json\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestDeleteCmd_RefusesCorruptFile(t *testing.T) {
	file := corruptPortfolio(t, "broken")

	c := &deleteCmd{portfolio: "broken"}
	if got := c.Execute(context.Background(), flag.NewFlagSet("delete", flag.ContinueOnError)); got != subcommands.ExitFailure {
		t.Fatalf("Execute() = %v, want failure without -f", got)
	}
	if _, err := os.Stat(file); err != nil {
		t.Errorf("portfolio file should survive a refused delete: %v", err)
	}
}

func TestDeleteCmd_ForceDeletesCorruptFile(t *testing.T) {
	file := corruptPortfolio(t, "broken")

	c := &deleteCmd{portfolio: "broken", force: true}
	if got := c.Execute(context.Background(), flag.NewFlagSet("delete", flag.ContinueOnError)); got != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want success with -f", got)
	}
	if _, err := os.Stat(file); !os.IsNotExist(err) {
		t.Errorf("portfolio file should be gone after delete -f, stat err = %v", err)
	}
}
