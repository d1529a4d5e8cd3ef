package main

import (
	"boarddocs-backend/cmd/boarddocs-cli/cmd"
)

func main() {
	cmd.Execute()
}
