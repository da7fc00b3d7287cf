package main

import (
	"os"

	_ "wecom-relay/docs" // Swagger docs
)

// @title       WeCom Relay API
// @description Relays text, markdown, link and image messages to a WeCom group-bot webhook.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
