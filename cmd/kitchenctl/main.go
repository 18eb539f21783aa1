package main

import "github.com/pageza/ourkitchen/backend/internal/cli"

func main() {
	cli.Execute()
}
