// cmd/extract-cds/main.go
package main

import (
	"seqpost/internal/appshell"
	"seqpost/internal/extractapp"
)

func main() { appshell.Main(extractapp.RunContext) }
