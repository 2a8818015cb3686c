package main

import (
	"github.com/sheetbridge/sheetbridge/commands"
	"github.com/sheetbridge/sheetbridge/internal/log"
)

func main() {
	defer log.Sync()

	commands.Execute()
}
