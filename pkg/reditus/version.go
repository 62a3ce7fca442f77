// Package reditus holds build metadata shared by the CLI.
package reditus

// Version is the release version of the reditus module.
const Version = "0.1.0"

// Revision is the git revision the binary was built from. It is set with
// -ldflags at build time.
var Revision = "dev"
