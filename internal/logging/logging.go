package logging

import (
	"log"
	"os"
)

// Setup configures the standard logger. With an empty filename logs go to
// stderr; otherwise they are appended to the file and cleanup closes it.
func Setup(filename string) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if filename == "" {
		log.SetOutput(os.Stderr)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
