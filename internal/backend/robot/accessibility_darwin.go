//go:build darwin

package robot

import "github.com/go-vgo/robotgo"

// accessibilityOK reports whether the process holds the accessibility
// consent macOS requires for synthetic input.
func accessibilityOK() bool {
	return robotgo.IsValid()
}
