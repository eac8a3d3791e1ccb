package ffmpeg

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Transfer constants
const (
	fetchBlockSize = 32 * 1024

	filePermissions = 0755
)

// ErrBinaryNotFound is returned when the extracted tree holds no binary
var ErrBinaryNotFound = errors.New("binary not found in extracted archive")

// fetchArchive downloads the archive to dest, reporting block-wise progress
// as a percentage clamped to [0,100]. A failed fetch leaves no file behind.
func (a *Acquisition) fetchArchive(dest string) error {
	resp, err := a.client.Get(a.archiveURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}

	total := resp.ContentLength
	var written int64
	buf := make([]byte, fetchBlockSize)

	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				out.Close()
				os.Remove(dest)
				return writeErr
			}
			written += int64(n)

			if total > 0 {
				percent := int(written * 100 / total)
				if percent > 100 {
					percent = 100
				}
				a.reportProgress(percent)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			out.Close()
			os.Remove(dest)
			return readErr
		}
	}

	return out.Close()
}

// extractArchive unpacks a zip archive into destDir. Entries escaping the
// destination are rejected.
func extractArchive(archivePath, destDir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return err
	}
	defer reader.Close()

	if err := os.MkdirAll(destDir, filePermissions); err != nil {
		return err
	}

	for _, file := range reader.File {
		if err := extractEntry(file, destDir); err != nil {
			return err
		}
	}

	return nil
}

// extractEntry writes one archive entry under destDir
func extractEntry(file *zip.File, destDir string) error {
	target := filepath.Join(destDir, filepath.FromSlash(file.Name))

	// Reject entries that would land outside the destination.
	if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return fmt.Errorf("archive entry escapes destination: %s", file.Name)
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(target, filePermissions)
	}

	if err := os.MkdirAll(filepath.Dir(target), filePermissions); err != nil {
		return err
	}

	in, err := file.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, file.Mode())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

// findBinary walks root recursively for a file named name and returns its
// full path
func findBinary(root, name string) (string, error) {
	var found string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == name {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	if found == "" {
		return "", ErrBinaryNotFound
	}

	return found, nil
}
