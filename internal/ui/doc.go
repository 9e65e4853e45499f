// Package ui provides styled terminal output for termkit's CLI.
//
// The package includes status lines, headers, tables and prompts built on
// Lip Gloss, Bubbles and Huh. The animated displays themselves live in the
// progress package; ui supplies the surrounding output.
//
// # Color Scheme
//
// Colors are defined as ANSI palette indices for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Warnings and cancelled runs
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text, timing info
//	ColorSecondary (blue)   - Version and accents
//
// SinkColor converts any of them to the terminal.Color used by progress
// renderers. Use DisableColors() to switch to monochrome output (for
// --no-color).
//
// # Prompts
//
// Prompter uses Huh forms on a terminal and numbered line prompts when stdin
// is piped:
//
//	p := ui.NewPrompter(os.Stdin, os.Stdout)
//	ok, err := p.Confirm("Overwrite config?", false)
//	idx, err := p.Select("Fill color", []string{"green", "cyan"})
//
// # Status Lines
//
//	fmt.Println(ui.RenderStatus(ui.OutcomeSuccess, "make build", elapsed))
//	// ✓ make build 1.2s
package ui
