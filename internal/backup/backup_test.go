package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeStore(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("failed to write store file: %v", err)
	}
	return path
}

func TestCreateBackup_JSONStore(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStore(t, dir, "crewplan.json", `{"version":1}`)

	mgr := NewManager(storePath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if !strings.HasPrefix(filepath.Base(backupPath), BackupFilePrefix) {
		t.Errorf("backup name %s missing prefix", filepath.Base(backupPath))
	}
	if !strings.HasSuffix(backupPath, ".json") {
		t.Errorf("backup %s should keep the store extension", backupPath)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(data) != `{"version":1}` {
		t.Errorf("backup contents do not match store: %s", data)
	}
}

func TestCreateBackup_MissingStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Fatal("expected error for missing store, got nil")
	}
}

func TestListBackups_EmptyDir(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "crewplan.json"))
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestListBackups_IgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStore(t, dir, "crewplan.json", `{}`)

	mgr := NewManager(storePath)
	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	writeStore(t, mgr.GetBackupDir(), "notes.txt", "not a backup")

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("expected 1 backup, got %d", len(backups))
	}
}

func TestRestoreBackup_JSONStore(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStore(t, dir, "crewplan.json", `{"version":1,"state":"old"}`)

	mgr := NewManager(storePath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Change the live store, then restore the snapshot.
	writeStore(t, dir, "crewplan.json", `{"version":1,"state":"new"}`)

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	data, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatalf("failed to read restored store: %v", err)
	}
	if string(data) != `{"version":1,"state":"old"}` {
		t.Errorf("restore did not bring back the snapshot: %s", data)
	}
}
