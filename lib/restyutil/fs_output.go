package restyutil

import (
	"log/slog"
	"os"
	"path/filepath"
)

const debugDirEnv = "PRICETRACK_DEBUG_HTTP"

type FilesystemOutput struct {
	directory string
}

func NewFilesystemOutput(dir string) FilesystemOutput {
	os.RemoveAll(dir)
	err := os.MkdirAll(dir, 0o777)
	if err != nil {
		panic(err)
	}
	return FilesystemOutput{directory: dir}
}

// OutputFromEnv returns a filesystem output dumping every scraper
// exchange into $PRICETRACK_DEBUG_HTTP, or nil when the variable is
// unset.
func OutputFromEnv() InstrumentOutput {
	dir := os.Getenv(debugDirEnv)
	if dir == "" {
		return nil
	}
	return NewFilesystemOutput(dir)
}

func (o FilesystemOutput) Write(id string, contents string) {
	err := os.WriteFile(filepath.Join(o.directory, id), []byte(contents), 0o600)
	if err != nil {
		slog.Warn("failed to write message info file", "id", id, "err", err)
	}
}
