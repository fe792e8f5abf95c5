// SPDX-FileCopyrightText: 2026 The fonty authors
// SPDX-License-Identifier: MIT

package fonts

// ProgressSink receives per-item notifications while referenced files are
// downloaded. It is purely observational: implementations must not affect
// control flow. Index is zero-based.
type ProgressSink interface {
	Start(index, total int, filename string)
	Done(index, total int, filename string)
}

type nopSink struct{}

func (nopSink) Start(int, int, string) {}
func (nopSink) Done(int, int, string)  {}

// NopSink returns a ProgressSink that discards all notifications.
func NopSink() ProgressSink {
	return nopSink{}
}
