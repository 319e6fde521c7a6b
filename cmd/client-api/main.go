// Package main is the entry point for the client service.
package main

import "imaut/internal/app"

func main() {
	app.Main(app.ClientModule())
}
