package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dasnellings/purgeCutoffs/cutoffs"
)

// TestMain lets the test binary stand in for the purgeCutoffs command.
func TestMain(m *testing.M) {
	if os.Getenv("PURGE_CUTOFFS_AS_MAIN") == "1" {
		os.Args = append([]string{"purgeCutoffs"}, strings.Fields(os.Getenv("PURGE_CUTOFFS_ARGS"))...)
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func runCommand(t *testing.T, dir string, args ...string) ([]byte, error) {
	exe, err := os.Executable()
	if err != nil {
		t.Fatal(err)
	}
	cmd := exec.Command(exe)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "PURGE_CUTOFFS_AS_MAIN=1", "PURGE_CUTOFFS_ARGS="+strings.Join(args, " "))
	return cmd.CombinedOutput()
}

func TestPurgeCutoffs(t *testing.T) {
	input, err := filepath.Abs("../../cutoffs/testdata/onePeak.csv")
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	out, err := runCommand(t, dir, input)
	if err != nil {
		t.Fatalf("command failed: %v\n%s", err, out)
	}

	lmh, err := os.ReadFile(filepath.Join(dir, cutoffs.LowMidHighFile))
	if err != nil {
		t.Fatal(err)
	}
	if string(lmh) != "cutoff_low,cutoff_mid,cutoff_high\n6,27,31\n" {
		t.Errorf("unexpected %s:\n%s", cutoffs.LowMidHighFile, lmh)
	}

	logText, err := os.ReadFile(filepath.Join(dir, cutoffs.LogFile))
	if err != nil {
		t.Fatal(err)
	}
	for _, expected := range []string{"Starting script...", "1 peaks were estimated", "2 or more are expected"} {
		if !strings.Contains(string(logText), expected) {
			t.Errorf("log is missing %q:\n%s", expected, logText)
		}
	}
}

func TestPurgeCutoffsFailure(t *testing.T) {
	input, err := filepath.Abs("../../cutoffs/testdata/twoMinima.csv")
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	out, err := runCommand(t, dir, input)
	if err == nil {
		t.Fatalf("expected command to fail:\n%s", out)
	}
	if !strings.Contains(string(out), "insufficient local minima found") {
		t.Errorf("expected error on stderr, got:\n%s", out)
	}
	if _, err = os.Stat(filepath.Join(dir, cutoffs.CriticalValuesFile)); !os.IsNotExist(err) {
		t.Errorf("%s should not be written", cutoffs.CriticalValuesFile)
	}

	if _, err = runCommand(t, dir); err == nil {
		t.Error("expected command to fail without an input file")
	}
}
