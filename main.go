package main

import "github.com/mouse-blink/regdump/cmd"

func main() {
	cmd.Execute()
}
