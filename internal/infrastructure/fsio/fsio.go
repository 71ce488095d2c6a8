package fsio

import (
	"fmt"
	"os"
)

// OSFileWriter implements FileWriter on top of the local filesystem
type OSFileWriter struct{}

// WriteFile creates or truncates filename and writes data verbatim. The file
// handle is closed on every path; a failed close is reported as an error.
func (w OSFileWriter) WriteFile(filename string, data []byte, perm int) (err error) {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, os.FileMode(perm))
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", closeErr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// OSFileReader implements FileReader on top of the local filesystem
type OSFileReader struct{}

func (r OSFileReader) ReadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}
