// cmd/dnalign-serve/main.go
package main

import (
	"dnalign/internal/appshell"
	"dnalign/internal/serveapp"
)

func main() { appshell.Serve(serveapp.RunContext) }
