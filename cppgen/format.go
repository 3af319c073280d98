package cppgen

import (
	"os/exec"

	"github.com/SSimco/dynspv/errors"
)

// FormatFile runs clang-format in place on the generated header.
func FormatFile(path string) error {
	return FormatFileWith("clang-format", path)
}

// FormatFileWith runs the given clang-format binary in place on path.
func FormatFileWith(binary, path string) error {
	out, err := exec.Command(binary, "-i", path).CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "%s failed on %s: %s", binary, path, string(out))
	}
	return nil
}
