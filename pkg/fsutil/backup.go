package fsutil

import (
	"context"
	"fmt"
	"os"
)

// BackupSuffix is appended to a file path to form its sidecar backup path.
const BackupSuffix = ".callshift.bak"

// BackupConfig controls backup behavior.
type BackupConfig struct {
	// Enabled indicates whether a backup is written before rewriting.
	Enabled bool
}

// DefaultBackupConfig returns the defaults: backups disabled.
func DefaultBackupConfig() BackupConfig {
	return BackupConfig{Enabled: false}
}

// BackupPath returns the sidecar backup path for a file.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup writes a sidecar backup of path if one does not already
// exist. Returns true if a backup was created. Existing backups are never
// overwritten, so repeated runs keep the pre-rewrite original.
func CreateBackup(ctx context.Context, path string, cfg BackupConfig) (bool, error) {
	if !cfg.Enabled {
		return false, nil
	}

	select {
	case <-ctx.Done():
		return false, fmt.Errorf("create backup: %w", ctx.Err())
	default:
	}

	backupPath := BackupPath(path)
	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat backup path: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read original for backup: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat original for backup: %w", err)
	}

	if err := WriteAtomic(ctx, backupPath, content, stat.Mode()); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}
