// cmd/dnalign/main.go
package main

import (
	"dnalign/internal/app"
	"dnalign/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
