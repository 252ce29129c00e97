//go:build !windows

package window_test

const testingOnWindows = false
