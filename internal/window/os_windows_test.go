//go:build windows

package window_test

const testingOnWindows = true
