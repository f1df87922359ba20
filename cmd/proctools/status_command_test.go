package main

import (
	"path/filepath"
	"testing"

	"proctools/internal/testsupport"
)

func TestStatusCommandReportsInventory(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteObservation(t, env.productDir, "obs-001", "2024-03-01T10:00:00Z", "cam-a", "3")
	testsupport.WriteObservation(t, env.productDir, "obs-002", "2024-03-01T11:00:00Z", "cam-a", "3")
	testsupport.WriteFlat(t, env.productDir, "flat-001", "cam-a", "3")

	out, _, err := runCLI(t, []string{"status"}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "observation")
	requireContains(t, out, "rad-flat-prm")
	requireContains(t, out, "Rad Flat Prm")
	requireContains(t, out, "3 products across 2 types (loaded 3 this run)")
	requireContains(t, out, "[OK]")
}

func TestStatusCommandWarnsOnEmptyDepot(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"status"}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "[WARN]")
	requireContains(t, out, "0 products across 0 types")
}

func TestStatusCommandPositionalDirectories(t *testing.T) {
	env := setupCLITestEnv(t)
	other := filepath.Join(env.baseDir, "other")
	testsupport.WriteObservation(t, other, "obs-001", "2024-03-01T10:00:00Z", "cam-a", "3")

	out, _, err := runCLI(t, []string{"status", other}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "loaded 1 this run")
}

func TestStatusCommandFlatFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteObservation(t, env.productDir, "obs-top", "2024-03-01T10:00:00Z", "cam-a", "3")
	testsupport.WriteObservation(t, filepath.Join(env.productDir, "nested"), "obs-nested", "2024-03-01T11:00:00Z", "cam-a", "3")

	out, _, err := runCLI(t, []string{"status", "--flat"}, env.configPath)
	if err != nil {
		t.Fatalf("status --flat: %v", err)
	}
	requireContains(t, out, "loaded 1 this run")
}

func TestStatusCommandRequiresDirectories(t *testing.T) {
	env := setupCLITestEnv(t)
	t.Setenv("PROCTOOLS_PRODUCT_DIR", "")
	// A config without product_dirs and no positional arguments.
	empty := filepath.Join(env.baseDir, "empty.toml")
	writeFile(t, empty, "[paths]\nlog_dir = \""+env.logDir+"\"\n")

	if _, _, err := runCLI(t, []string{"status"}, empty); err == nil {
		t.Fatal("expected error without product directories")
	}
}

func TestStatusCommandMissingDirectory(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"status", filepath.Join(env.baseDir, "absent")}, env.configPath); err == nil {
		t.Fatal("expected error for unreadable directory")
	}
}
