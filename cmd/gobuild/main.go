package main

import (
	"github.com/contriboss/gobuild/cmd/gobuild/internal"
)

func main() {
	internal.Execute()
}
