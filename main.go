package main

import "github.com/saadjs/lifetrack-cli/cmd/lifetrack"

func main() {
	lifetrack.Execute()
}
