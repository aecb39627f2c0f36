package main

import "fmt"

// makeHyperlink wraps text in an OSC 8 hyperlink escape sequence pointing at
// url. Terminals with OSC 8 support render text as a clickable link; the
// visible bytes are unchanged either way.
func makeHyperlink(url, text string) string {
	return fmt.Sprintf("\x1b]8;;%s\x07%s\x1b]8;;\x07", url, text)
}

// fileURL builds a file:// URL for an absolute path on host. Path bytes are
// used as-is, without percent-encoding.
func fileURL(host, absPath string) string {
	return "file://" + host + absPath
}
