package classifiles

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Sort files by content type and back up the result for symlink-less filesystems"
	MsgRootLong = `classifiles sorts the files under an input directory into an output
directory organized by detected content type. Files are never moved or
copied: the output tree holds symbolic links to the absolute original
paths, with the canonical extension appended when the original name
lacks one or carries a wrong one.

Because symlinks do not survive on filesystems like FAT32, the output
tree can be converted with 'backup' into plain text files (one per
link, holding the target path) and converted back with 'restore'.`

	MsgScanShort    = "Classify files and build the symlink tree"
	MsgScanLong     = "Scan walks INPUT (a directory or a single file), detects each regular file's content type from its magic bytes, and creates a symlink under OUTPUT_DIR/<type>/ pointing at the absolute original path."
	MsgScanExample  = "  classifiles scan ~/downloads ~/sorted\n  classifiles scan photo.bin ~/sorted"
	MsgBackupShort  = "Convert symlinks into plain-text link files"
	MsgBackupLong   = "Backup walks INPUT_DIR and replaces every symlink with a regular file named <link>.symlink containing the link's target path, writing the result under OUTPUT_DIR (which may equal INPUT_DIR for in-place conversion)."
	MsgBackupExample = "  classifiles backup ~/sorted ~/sorted-fat32\n  classifiles backup ~/sorted ~/sorted"
	MsgRestoreShort = "Recreate symlinks from plain-text link files"
	MsgRestoreLong  = "Restore is the inverse of backup: every *.symlink file under INPUT_DIR becomes a symlink (named without the suffix) under OUTPUT_DIR, pointing at the path stored in the file."
	MsgRestoreExample = "  classifiles restore ~/sorted-fat32 ~/sorted\n  classifiles restore ~/sorted ~/sorted"
	MsgGenConfigShort = "Print the default configuration as TOML"
	MsgVersionShort   = "Print version information"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default: ./classifiles.toml, ./config.yaml, then XDG config dir)"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrScan       = "scan failed: %w"
	MsgErrBackup     = "backup failed: %w"
	MsgErrRestore    = "restore failed: %w"
	MsgErrAllFailed  = "all %d files failed"
)

// MsgUsageTemplate is cobra's usage layout with the section headers run
// through the bold/boldUpper template funcs registered in formatting.go
const MsgUsageTemplate = `{{boldUpper "Usage"}}:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases"}}:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples"}}:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

{{boldUpper "Available Commands"}}:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags"}}:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags"}}:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use {{bold (printf "%s [command] --help" .CommandPath)}} for more information about a command.{{end}}
`
