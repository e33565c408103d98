package folderize

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort      = "Convert a file into a same-named folder"
	MsgVersionShort   = "Print version information"
	MsgManShort       = "Generate man page"
	MsgDocsShort      = "Display documentation topics"
	MsgGenConfigShort = "Output the default configuration"
	MsgGenConfigLong  = "Output the default configuration to stdout or write it to the user config directory.\n\nWith -w, writes to $XDG_CONFIG_HOME/folderize/config.<format>."

	// Notifications
	MsgConverted      = "Converted %s to a folder"
	MsgConvertedIndex = "Converted %s to a folder, content preserved as %s"
	MsgDryRunNotice   = "Dry run, no changes made"
	MsgDryRunChoice   = "Dry run: %s is not empty, a strategy would be required"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun   = "Preview the conversion without changing anything"
	MsgFlagStrategy = "Content strategy for non-empty files: move or delete (default is to ask)"
	MsgFlagHeadless = "Run without prompts; unanswered decisions cancel the conversion"
	MsgFlagWrite    = "Write config to the user config directory instead of stdout"
	MsgFlagFormat   = "Config format: toml or yaml"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimSpace(msgRootExampleRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimSpace(msgGenConfigExampleRaw)
)
