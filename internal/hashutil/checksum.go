package hashutil

import (
	"crypto/sha256"
	"fmt"
	"io"
)

// StreamChecksum returns the SHA256 checksum of the rest of r and moves
// r back to where it was, so the stream can still be decoded.
func StreamChecksum(r io.ReadSeeker) (string, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return "", err
	}

	hash := sha256.New()
	if _, err := io.Copy(hash, r); err != nil {
		return "", err
	}

	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return "", err
	}
	return fmt.Sprintf("sha256:%x", hash.Sum(nil)), nil
}
