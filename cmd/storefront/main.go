package main

import "github.com/jmallard/storefront/internal/cli"

func main() {
	cli.Execute()
}
