package main

import (
	"github.com/livp123/urlp/cmd/urlp/commands"
)

func main() {
	commands.Execute()
}
