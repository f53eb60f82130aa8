package xlsx

import (
	"encoding/hex"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"

	"github.com/klabast/wb-services/abfall-grid/internal/grid"
	"github.com/klabast/wb-services/abfall-grid/internal/logger"
)

// Fingerprint returns the hex BLAKE2b-256 digest of the input file, stored as document
// identifier so a sheet can be traced back to its calendar data
func Fingerprint(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", &grid.IOError{Op: "fingerprint", Path: path, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Warn("Error closing input file", "path", path, "error", err)
		}
	}()

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, file); err != nil {
		return "", &grid.IOError{Op: "fingerprint", Path: path, Err: err}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
