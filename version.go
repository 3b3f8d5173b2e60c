package main

import (
	"context"
	"fmt"
)

// version holds the version of the unicodeconv program. It is set at
// build time via ldflags.
var version = "development"

// VersionCmd displays unicodeconv version information.
type VersionCmd struct{}

// Run executes the version command.
func (cmd VersionCmd) Run(ctx context.Context) error {
	fmt.Printf("unicodeconv %s\n", version)
	return nil
}
