package build

var (
	// Version is populated via ldflags.
	Version = "dev"
	// Commit captures the source revision.
	Commit = ""
	// Date contains the build timestamp.
	Date = ""
)
