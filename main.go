package main

import "github.com/killallgit/storychat/cmd"

func main() {
	cmd.Execute()
}
