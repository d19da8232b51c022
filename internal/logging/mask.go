// Copyright (c) 2025 Craftlink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"regexp"
)

var (
	rePassword = regexp.MustCompile(`(?i)("password"\s*:\s*")([^"]+)(")`)
	rePassKV   = regexp.MustCompile(`(?i)(password=)([^\s;]+)`)
	reBearer   = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._-]+)`)
)

// Mask replaces sensitive values in the input string with "***".
// Bearer tokens and password values never reach logs or terminal output intact.
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, `$1***$3`)
	out = rePassKV.ReplaceAllString(out, "$1***")
	out = reBearer.ReplaceAllString(out, "$1***")
	return out
}
