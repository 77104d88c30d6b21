package operations

import (
	"fmt"
	"path/filepath"

	"github.com/kebairia/keepass-backup/internal/backup"
)

// Run waits for the sync client to settle, copies the database to a
// timestamped file in the backup directory, reports the byte count and
// waits again so the report stays readable. Any failure aborts the run
// before the report.
func (op *Operator) Run() (backup.Record, error) {
	// 1) Give boot, network and the sync client time to come up
	fmt.Fprintf(op.out, "Waiting %s for Dropbox and the network to start.\n",
		backup.FormatWait(op.cfg.PreWait))
	op.sleep(op.cfg.PreWait)

	// 2) Copy; both files are closed by the time this returns
	record, err := op.copyDatabase()
	if err != nil {
		op.log.Error("backup failed",
			"database", op.cfg.Database,
			"error", err.Error(),
		)
		return record, err
	}
	op.log.Info("backup complete",
		"source", record.Source,
		"destination", record.Destination,
		"bytes", record.Bytes,
		"size", record.HumanSize(),
		"duration", record.Duration,
	)

	// 3) Report
	fmt.Fprintf(op.out, "%d bytes copied.\n", record.Bytes)

	// 4) Keep the message visible
	fmt.Fprintf(op.out, "This message will remain visible for %s.\n",
		backup.FormatWait(op.cfg.PostWait))
	op.sleep(op.cfg.PostWait)

	return record, nil
}

// copyDatabase opens the source before touching the backup directory, so a
// missing database never leaves a destination file behind. The destination
// is flushed to stable storage and closed before returning.
func (op *Operator) copyDatabase() (record backup.Record, err error) {
	start := op.clock()
	record.StartedAt = start
	record.Label = backup.Label(start)
	op.log.Debug("computed timestamp label", "label", record.Label)

	srcDir, err := backup.ResolveDir(op.workDir, op.cfg.Source.Dirs...)
	if err != nil {
		return record, fmt.Errorf("source directory: %w", err)
	}
	record.Source = filepath.Join(srcDir, op.cfg.Database)
	src, err := backup.OpenSource(record.Source)
	if err != nil {
		return record, err
	}
	defer src.Close()
	op.log.Debug("opened source", "path", record.Source)

	dstDir, err := backup.ResolveDir(op.workDir, op.cfg.Backup.Dirs...)
	if err != nil {
		return record, fmt.Errorf("backup directory: %w", err)
	}
	record.Destination = filepath.Join(dstDir, record.Label+op.cfg.Database)
	dst, err := backup.CreateDestination(record.Destination)
	if err != nil {
		return record, err
	}
	op.log.Debug("opened destination", "path", record.Destination)

	n, err := backup.Copy(dst, src)
	if err != nil {
		_ = dst.Close()
		return record, err
	}
	if err := dst.Sync(); err != nil {
		_ = dst.Close()
		return record, fmt.Errorf("%w: sync destination: %v", backup.ErrCopy, err)
	}
	if err := dst.Close(); err != nil {
		return record, fmt.Errorf("%w: close destination: %v", backup.ErrCopy, err)
	}

	record.Bytes = int64(n)
	record.Duration = op.clock().Sub(start)
	return record, nil
}
