package version

import (
	"strings"

	"github.com/fatih/color"
)

// Build metadata for the triad CLI. Overridable at build time via
// -ldflags "-X triad/internal/version.Version=...".

var (
	// Version is the semantic version of the CLI. Kept as a plain
	// literal so an ldflags override survives; styling happens in
	// Styled at render time.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorStyle = color.New(color.FgYellow, color.Bold)
	minorStyle = color.New(color.FgGreen, color.Bold)
	patchStyle = color.New(color.FgBlue, color.Bold)
)

// Styled renders Version with the major.minor.patch components
// colorized for terminal output. Honors color.NoColor, so callers
// toggle color globally and Styled follows. Versions that do not split
// into three components come back unstyled.
func Styled() string {
	parts := strings.SplitN(Version, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	return majorStyle.Sprint(parts[0]) + "." + minorStyle.Sprint(parts[1]) + "." + patchStyle.Sprint(parts[2])
}
