package cli

import "os"

const (
	// CommandGenerate generates names for the configured inputs.
	CommandGenerate = "generate"
	// CommandServe runs the HTTP host adapter.
	CommandServe = "serve"
)

// Args are the parsed command-line arguments.
type Args struct {
	Command    string
	ConfigPath string
}

// ParseArgs reads the command and config file path from CLI arguments.
//
// It accepts both `-c <path>` and `--config <path>`. If no explicit config
// flag is provided, it falls back to `config.yaml`. The first bare word is
// the command; without one the command is generate.
func ParseArgs(argv []string) Args {
	args := Args{Command: CommandGenerate, ConfigPath: "config.yaml"}
	seenCommand := false
	for i := 0; i < len(argv); i++ {
		switch {
		case argv[i] == "-c" || argv[i] == "--config":
			if i+1 < len(argv) {
				args.ConfigPath = argv[i+1]
				i++
			}
		case !seenCommand && len(argv[i]) > 0 && argv[i][0] != '-':
			args.Command = argv[i]
			seenCommand = true
		}
	}
	return args
}

// Exit terminates the process with the given exit code.
func Exit(code int) {
	os.Exit(code)
}
