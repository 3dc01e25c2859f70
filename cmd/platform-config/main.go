// Package main provides the CLI entrypoint for platform-config.
//
// platform-config merges the per-platform overrides declared in a hybrid app
// project's config.xml into the native configuration files:
//   - preferences and config-file blocks into AndroidManifest.xml
//   - config-file blocks into <App>-Info.plist
//   - one platform failing never stops the others
package main

import (
	"fmt"
	"os"

	"platform-config/cmd/platform-config/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
