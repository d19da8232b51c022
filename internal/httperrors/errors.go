// Copyright (c) 2025 Craftlink
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors provides user-friendly presentation of HTTP and network
// failures so operators see what went wrong without a Go stack of wrapped
// errors.
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// FormatNetworkError renders a friendly explanation for err and returns a
// wrapped error for logging. The caller decides whether to abort.
func FormatNetworkError(err error, context string) error {
	if err == nil {
		return nil
	}
	displayErrorMessage(err, context)
	return fmt.Errorf("network error: %w", err)
}

func displayErrorMessage(err error, context string) {
	switch {
	case isTimeoutError(err):
		showTimeoutError(context)
	case isDNSError(err):
		showDNSError(context)
	case isConnectionRefusedError(err):
		showConnectionRefusedError(context)
	case isTLSError(err):
		showTLSError(context)
	default:
		showGenericError(context, err.Error())
	}
}

func isTimeoutError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded")
}

func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func isConnectionRefusedError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

func isTLSError(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "x509")
}

func showTimeoutError(context string) {
	pterm.Printf("⏱️  Connection timeout while %s\n", context)
	pterm.Println()
	pterm.Println("The verification service took too long to respond.")
	pterm.Println("Please try again in a few moments.")
	pterm.Println()
}

func showDNSError(context string) {
	pterm.Printf("🌐 Cannot resolve the service address while %s\n", context)
	pterm.Println()
	pterm.Println("Check your internet connection and the configured backend address")
	pterm.Println("(CRAFTLINK_API_URL or the config file).")
	pterm.Println()
}

func showConnectionRefusedError(context string) {
	pterm.Printf("🚫 Connection refused while %s\n", context)
	pterm.Println()
	pterm.Println("The verification service is not accepting connections.")
	pterm.Println("Please try again later or check the configured address.")
	pterm.Println()
}

func showTLSError(context string) {
	pterm.Printf("🔐 Secure connection failed while %s\n", context)
	pterm.Println()
	pterm.Println("The verification service's certificate could not be verified.")
	pterm.Println("Check the configured backend address, or your system clock.")
	pterm.Println()
}

func showGenericError(context string, errDetails string) {
	pterm.Printf("❌ Cannot reach the verification service while %s\n", context)
	pterm.Println()
	if errDetails != "" {
		if len(errDetails) > 100 {
			errDetails = errDetails[:100] + "..."
		}
		pterm.Debug.Printf("Technical details: %s\n", errDetails)
	}
}
