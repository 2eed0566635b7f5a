package main

import "jobdeck_gateway/internal/app"

func main() {
	app.Run()
}
