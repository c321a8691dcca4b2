package main

import "lsaudio/cmd"

func main() {
	cmd.Execute()
}
