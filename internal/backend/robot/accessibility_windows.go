//go:build windows

package robot

// Windows has no accessibility gate for SendInput.
func accessibilityOK() bool {
	return true
}
