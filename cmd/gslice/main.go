// cmd/gslice/main.go
package main

import (
	"gslice/internal/app"
	"gslice/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
