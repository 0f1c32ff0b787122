// Command customssim runs a customs-hall simulation once, or searches for
// the cheapest booth schedule that keeps average waits under threshold.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.StandardLogger().WithError(err).Error("customssim failed")
		os.Exit(exitCodeFor(err))
	}
}
