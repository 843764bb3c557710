package main

import "github.com/aoi-f/gh-profile-stats/cmd"

func main() {
	cmd.Execute()
}
