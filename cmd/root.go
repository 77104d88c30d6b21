package cmd

import (
	"fmt"
	"os"

	"github.com/kebairia/keepass-backup/internal/config"
	"github.com/kebairia/keepass-backup/internal/logger"
	"github.com/kebairia/keepass-backup/internal/operations"
	"github.com/spf13/cobra"
)

// operatorOpts are appended after the production options when the
// operator is built; tests use them to replace the clock and sleep.
var operatorOpts []operations.Option

// rootCmd is the base command for backup-keepass.
var rootCmd = &cobra.Command{
	Use:   "backup-keepass",
	Short: "Copy the KeePass database to a timestamped backup file",
	Long: `backup-keepass waits for Dropbox to settle, then copies
Dropbox/KeePass/Database.kdb to KeePass-backups/YYYY-MM-DD.HH.MM.SS.Database.kdb.

Both paths are relative to the working directory, so launch it with your
documents folder as the "start in" directory of the startup shortcut.
Both folders must already exist.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBackup,
}

func init() {
	// Startup-folder shortcuts are launched by explorer.exe; keep cobra from
	// refusing to run in that case.
	cobra.MousetrapHelpText = ""
}

// Execute runs the root command and exits non-zero if the backup failed.
func Execute() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func runBackup(cmd *cobra.Command, _ []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	cfg, err := config.Default()
	if err != nil {
		return err
	}
	log, err := logger.Init(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("logger init failed: %w", err)
	}

	opts := append([]operations.Option{
		operations.WithOutput(cmd.OutOrStdout()),
		operations.WithLogger(log),
	}, operatorOpts...)
	op := operations.NewOperator(cfg, workDir, opts...)
	_, err = op.Run()
	return err
}
