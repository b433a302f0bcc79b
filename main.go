// Copyright © 2018 The ELPS authors

package main

import "github.com/Fwxzxh/minilisp/cmd"

func main() {
	cmd.Execute()
}
