package main

import "os"

// @title           Event Results API
// @version         1.0
// @description     Categories, event results and PDF result sheets.
// @BasePath        /api
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
