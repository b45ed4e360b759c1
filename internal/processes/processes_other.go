//go:build !linux

package processes

func listNative(uid int) ([]Process, error) {
	return nil, ErrUnsupported
}
