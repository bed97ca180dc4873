package main

import "github.com/GarikMirzoyan/measurecolor/internal/server"

func main() {
	server.Run()
}
