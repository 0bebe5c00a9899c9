package main

import (
	"github.com/synclinehq/syncline/protocol"
	"github.com/synclinehq/syncline/utils/logger"
	"github.com/synclinehq/syncline/utils/safego"
)

func main() {
	defer safego.Recovery(true)

	if err := protocol.Execute(); err != nil {
		logger.Fatal(err)
	}
}
