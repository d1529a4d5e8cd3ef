package cmd

import (
	"boarddocs-backend/lib/configutil"
)

// Config drives district runs, read from the nearest boarddocs.json5
// up the filesystem. Flags override whatever is set here.
type Config struct {
	Site       string   `json:"site"`
	Committees []string `json:"committees"`
	From       string   `json:"from"`
	To         string   `json:"to"`
	OutputDir  string   `json:"output_dir"`
	DbPath     string   `json:"db_path"`
}

func readConfig() (Config, error) {
	return configutil.ReadRecursively[Config]("boarddocs.json5")
}
