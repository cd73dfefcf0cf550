package main

import (
	"context"

	"courtiq-api/cmd/scrape/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
