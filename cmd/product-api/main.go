// Package main is the entry point for the product service.
package main

import "imaut/internal/app"

func main() {
	app.Main(app.ProductModule())
}
