package minifiles

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Edit directories as text in your editor"
	MsgEditShort       = "Edit directory listings and apply the changes"
	MsgLsShort         = "Print directory listings"
	MsgLsLong          = "Ls prints the listing of each directory exactly as the editor would show it."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice = "\nDRY RUN MODE - No changes were made"
	MsgNoChanges    = "No changes."
	MsgCancelled    = "Cancelled, no changes were made."
	MsgVersionLine  = "minifiles version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrLoadConfig  = "failed to load configuration"
	MsgErrTempDir     = "failed to create listing directory"
	MsgErrWriteList   = "failed to write listing for %s"
	MsgErrReadList    = "failed to read listing for %s"
	MsgErrEditor      = "editor %s exited with an error"
	MsgErrFailedCount = "%d of %d actions failed"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Show the actions without executing them"
	MsgFlagFormat    = "Output format (auto, term, text, json, yaml, xml)"
	MsgFlagYes       = "Apply the actions without asking for confirmation"
	MsgFlagPermanent = "Delete entries permanently instead of moving them to the trash"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/edit-long.txt
	msgEditLongRaw string
	MsgEditLong    = strings.TrimSpace(msgEditLongRaw)

	//go:embed msgs/edit-example.txt
	msgEditExampleRaw string
	MsgEditExample    = strings.TrimRight(msgEditExampleRaw, "\n")

	//go:embed msgs/ls-example.txt
	msgLsExampleRaw string
	MsgLsExample    = strings.TrimRight(msgLsExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
