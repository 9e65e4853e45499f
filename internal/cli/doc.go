// Package cli implements termkit's cobra commands.
//
// Commands:
//
//	bar         Draw a progress bar for a simulated transfer
//	spin        Run a command behind a spinner
//	pick        Ask the user to choose from a list
//	config      init / show / set the configuration file
//	version     Print version information
//	completion  Generate shell completion scripts
//
// Every command loads configuration in the root PersistentPreRunE. Flags
// override config values only when given explicitly.
package cli
