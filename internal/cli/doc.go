// Package cli implements the togglebit command-line interface.
//
// The root command runs the widget. Its flags override values from the
// config file, which is found by the config package. runCommand then:
//
//  1. Loads and validates config, applying flag overrides
//  2. Sends the standard logger to togglebit.log (--verbose) or nowhere
//  3. Builds the toggle state from config and the embedded or overridden art
//  4. Runs the Bubble Tea program with mouse support and the quit filter
//
// Startup failures return structured errors before any UI is drawn; Execute
// prints them and exits 1.
//
// # Commands
//
//	togglebit               - Flip the bit
//	togglebit init          - Write .togglebit.yaml
//	togglebit version       - Print build information
//	togglebit completion    - Shell completion scripts
package cli
