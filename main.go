package main

import "github.com/kebairia/keepass-backup/cmd"

func main() {
	cmd.Execute()
}
