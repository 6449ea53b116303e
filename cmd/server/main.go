package main // Entry point package

import "github.com/iliyamo/heightconv/internal/cli"

func main() {
	cli.Execute()
}
