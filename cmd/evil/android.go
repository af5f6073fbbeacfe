//go:build android

package main

// Android has no /etc/resolv.conf; this import makes the pure Go resolver
// usable there.
import _ "github.com/mtibben/androiddnsfix"
