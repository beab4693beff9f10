package version

const (
	Version = "v0.1.0"

	colorReset    = "\033[0m"
	colorCyanBold = "\033[36;1m"
)

// asciiArtTpl returns the ASCII art banner of the sqlward CLI.
func asciiArtTpl() string {
	asciiArt := `
               ___                   __
   _________ _/ / |      _____ _____/ /
  / ___/ __ '/ /| | /| / / __ '/ __  /
 (__  ) /_/ / / | |/ |/ / /_/ / /_/ /
/____/\__, /_/  |__/|__/\__,_/\__,_/
        /_/ ` + Version + `
For more information visit https://github.com/sqlward/sqlward`

	asciiArt = asciiArt[1:] // This just removes the first newline character
	asciiArt = colorCyanBold + asciiArt + colorReset

	return asciiArt
}

// CLIVersion returns the banner shown when the CLI starts.
func CLIVersion() string {
	return asciiArtTpl()
}
