// file:dline/main.go
package main

import "github.com/rskv-p/dline/cmd"

func main() {
	cmd.Execute()
}
