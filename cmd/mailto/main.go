package main

import (
	_ "github.com/pixelvide/mailto-go/pkg/console" // Register commands
	"github.com/pixelvide/mailto-go/pkg/root"
)

func main() {
	root.Execute()
}
