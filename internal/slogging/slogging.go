// SPDX-License-Identifier: AGPL-3.0-or-later

package slogging

import (
	"log/slog"
	"os"
)

// Setup configures the default slog logger to write to os.Stderr,
// keeping diagnostics separate from the formatted output. When
// format is "json", it uses slog.NewJSONHandler; otherwise it
// uses slog.NewTextHandler.
func Setup(format string) {
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	} else {
		handler = slog.NewTextHandler(os.Stderr, nil)
	}
	slog.SetDefault(slog.New(handler))
}
