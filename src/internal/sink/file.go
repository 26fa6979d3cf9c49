package sink

import (
	"fmt"
	"os"

	"github.com/maksimkurb/keen-log/src/internal/errors"
)

// File is an append-only file target. The same path may be configured for
// several severities.
type File struct {
	Path string `json:"path"`
}

// Append opens path (creating it if missing), appends line and a newline, and
// closes it again.
func (f File) Append(line string) error {
	file, err := os.OpenFile(f.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.NewSinkIOError(fmt.Sprintf("couldn't open file %s", f.Path), err)
	}

	if _, err := file.WriteString(line + "\n"); err != nil {
		_ = file.Close()
		return errors.NewSinkIOError(fmt.Sprintf("couldn't write to file %s", f.Path), err)
	}

	if err := file.Close(); err != nil {
		return errors.NewSinkIOError(fmt.Sprintf("couldn't close file %s", f.Path), err)
	}
	return nil
}
