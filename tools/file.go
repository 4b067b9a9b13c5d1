package tools

import (
	"errors"
	"io/fs"
	"os"
)

// ReadOptionalFile reads path. A missing file is not an error and yields nil
// data, so callers fall back to their defaults.
func ReadOptionalFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func PanicOnError[T any](v T, e error) T {
	if e != nil {
		panic(e)
	}
	return v
}
