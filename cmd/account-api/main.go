// Package main is the entry point for the account service.
package main

import "imaut/internal/app"

func main() {
	app.Main(app.AccountModule())
}
