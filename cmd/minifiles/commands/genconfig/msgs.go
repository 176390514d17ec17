package genconfig

// Message constants
const (
	MsgShort   = "Generate a configuration file"
	MsgLong    = "Output the default configuration to stdout or write it to ./.minifiles.toml.\n\nWith --effective, output the configuration currently in use, after the\nconfig files and MINIFILES_* environment variables are applied."
	MsgExample = `  minifiles gen-config                # Output the commented defaults
  minifiles gen-config -w             # Write them to ./.minifiles.toml
  minifiles gen-config --effective    # Output the configuration in use`

	MsgFlagWrite     = "Write config to ./.minifiles.toml instead of stdout"
	MsgFlagEffective = "Output the effective configuration instead of the defaults"
	MsgFlagForce     = "Overwrite an existing config file when writing"
	MsgWritten       = "Wrote %s\n"
)
