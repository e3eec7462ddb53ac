package version

import "fmt"

const (
	Version = "v0.1.0"

	colorReset    = "\033[0m"
	colorCyanBold = "\033[36;1m"
)

// bannerTpl returns the colored banner of empdb.
func bannerTpl() string {
	banner := "empdb %s " + Version + "\n" +
		"Employee records on top of a local SQLite file"

	return colorCyanBold + banner + colorReset
}

// CLIVersion returns the version banner of the empdb CLI.
func CLIVersion() string {
	return fmt.Sprintf(bannerTpl(), "CLI")
}
