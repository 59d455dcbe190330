// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softconv

import (
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var (
	// DiagnosticLogger receives the intermediate state of conversions called with debug = true.
	// This variable is not thread-safe, so this should be changed on program start.
	DiagnosticLogger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
)

func diagLogger(op string) log.Logger {
	return level.Debug(log.With(DiagnosticLogger, "op", op))
}

func conversionName[From, To any]() string {
	var (
		from From
		to   To
	)
	return fmt.Sprintf("%T->%T", from, to)
}

func hex(v uint64) string {
	return fmt.Sprintf("%#x", v)
}
