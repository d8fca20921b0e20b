/*
Package main
File: main.go
Description: Entry point. All wiring lives in cmd; see "umamilab serve"
and "umamilab simulate".
*/

package main

import "github.com/everforgeworks/umami-lab/cmd"

func main() {
	cmd.Execute()
}
