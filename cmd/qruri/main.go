// Command qruri extracts payment requests from scanned text and computes gas fees.
//
// Usage:
//
//	qruri parse 'ethereum:0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed?value=1e18'
//	pbpaste | qruri parse --output json
//	qruri gas fee --price 20 --limit 21000
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
