package classifiles

import (
	"fmt"

	"github.com/arthur-debert/classifiles/pkg/commands"
	"github.com/arthur-debert/classifiles/pkg/config"
	"github.com/arthur-debert/classifiles/pkg/errors"
	"github.com/arthur-debert/classifiles/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func loadConfig(configPath *string) (*config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

func newScanCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:     "scan INPUT OUTPUT_DIR",
		Short:   MsgScanShort,
		Long:    MsgScanLong,
		Example: MsgScanExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			log.Info().Str("input", args[0]).Str("output", args[1]).Msg("Scanning")

			result, err := commands.Scan(commands.ScanOptions{
				Input:     args[0],
				OutputDir: args[1],
				Config:    cfg,
			})
			if err != nil {
				return fmt.Errorf(MsgErrScan, err)
			}
			if result.Failed > 0 && result.Linked == 0 && result.Skipped == 0 {
				return errors.Newf(errors.ErrInputAccess, MsgErrAllFailed, result.Failed)
			}

			fmt.Fprintln(cmd.OutOrStdout(), style.NewRenderer().RenderScanSummary(result))
			return nil
		},
	}
}

func newBackupCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:     "backup INPUT_DIR OUTPUT_DIR",
		Short:   MsgBackupShort,
		Long:    MsgBackupLong,
		Example: MsgBackupExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			log.Info().Str("input", args[0]).Str("output", args[1]).Msg("Backing up links")

			result, err := commands.Backup(commands.ConvertOptions{
				InputDir:     args[0],
				OutputDir:    args[1],
				MarkerSuffix: cfg.Backup.MarkerSuffix,
			})
			if err != nil {
				return fmt.Errorf(MsgErrBackup, err)
			}
			if result.Failed > 0 && result.Converted == 0 && result.Passed == 0 {
				return errors.Newf(errors.ErrInputAccess, MsgErrAllFailed, result.Failed)
			}

			fmt.Fprintln(cmd.OutOrStdout(), style.NewRenderer().RenderConvertSummary("backed up", result))
			return nil
		},
	}
}

func newRestoreCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:     "restore INPUT_DIR OUTPUT_DIR",
		Short:   MsgRestoreShort,
		Long:    MsgRestoreLong,
		Example: MsgRestoreExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			log.Info().Str("input", args[0]).Str("output", args[1]).Msg("Restoring links")

			result, err := commands.Restore(commands.ConvertOptions{
				InputDir:     args[0],
				OutputDir:    args[1],
				MarkerSuffix: cfg.Backup.MarkerSuffix,
			})
			if err != nil {
				return fmt.Errorf(MsgErrRestore, err)
			}
			if result.Failed > 0 && result.Converted == 0 && result.Passed == 0 {
				return errors.Newf(errors.ErrInputAccess, MsgErrAllFailed, result.Failed)
			}

			fmt.Fprintln(cmd.OutOrStdout(), style.NewRenderer().RenderConvertSummary("restored", result))
			return nil
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := config.DefaultTOML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
