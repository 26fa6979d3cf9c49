//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package term

func isTerminal(fd int) bool {
	return false
}
