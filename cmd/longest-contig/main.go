// cmd/longest-contig/main.go
package main

import (
	"seqpost/internal/appshell"
	"seqpost/internal/longestapp"
)

func main() { appshell.Main(longestapp.RunContext) }
