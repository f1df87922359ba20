package pipeline_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"proctools/internal/pipeline"
	"proctools/internal/testsupport"
)

func TestStartAcquiresExclusiveLock(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	run, err := pipeline.Start(cfg, nil)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if run.ID == "" {
		t.Fatal("expected run ID to be assigned")
	}

	if _, err := pipeline.Start(cfg, nil); err == nil {
		t.Fatal("expected second start to fail while lock held")
	}

	run.Finish(nil)

	again, err := pipeline.Start(cfg, nil)
	if err != nil {
		t.Fatalf("Start after Finish failed: %v", err)
	}
	again.Finish(errors.New("aborted for test"))
}

func TestStartRequiresConfig(t *testing.T) {
	if _, err := pipeline.Start(nil, nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestCheckDirReadable(t *testing.T) {
	dir := t.TempDir()
	if err := pipeline.CheckDirReadable(dir); err != nil {
		t.Fatalf("CheckDirReadable failed on readable dir: %v", err)
	}

	if err := pipeline.CheckDirReadable(filepath.Join(dir, "absent")); err == nil {
		t.Fatal("expected error for missing directory")
	}

	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := pipeline.CheckDirReadable(file); err == nil {
		t.Fatal("expected error for non-directory")
	}

	if os.Geteuid() != 0 {
		locked := filepath.Join(dir, "locked")
		if err := os.Mkdir(locked, 0o000); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		defer os.Chmod(locked, 0o755)
		if err := pipeline.CheckDirReadable(locked); err == nil {
			t.Fatal("expected error for unreadable directory")
		}
	}
}

func TestCheckDirsStopsAtFirstFailure(t *testing.T) {
	good := t.TempDir()
	bad := filepath.Join(good, "absent")
	if err := pipeline.CheckDirs([]string{good, bad}); err == nil {
		t.Fatal("expected error from unreadable directory")
	}
	if err := pipeline.CheckDirs([]string{good}); err != nil {
		t.Fatalf("CheckDirs failed: %v", err)
	}
	if err := pipeline.CheckDirs(nil); err != nil {
		t.Fatalf("CheckDirs on empty list failed: %v", err)
	}
}
