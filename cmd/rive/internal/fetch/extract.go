package fetch

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ExtractTarGz unpacks regular files and directories of a gzipped tarball
// into destDir. Entries that would land outside destDir are skipped.
func ExtractTarGz(tarPath, destDir string) error {
	f, err := os.Open(tarPath)
	if err != nil {
		return err
	}
	defer f.Close()

	gzr, err := gzip.NewReader(f)
	if err != nil {
		return err
	}
	defer gzr.Close()

	tr := tar.NewReader(gzr)

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if !isValidTarPath(header.Name) {
			continue
		}

		cleanName := filepath.Clean(header.Name)
		target := filepath.Join(destDir, cleanName)

		// Final safety check: ensure target is within destDir
		if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
			continue
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := writeFile(target, tr, os.FileMode(header.Mode)&0o777); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeFile(target string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// isValidTarPath checks if a tar entry path is safe to extract.
func isValidTarPath(name string) bool {
	if name == "" || filepath.IsAbs(name) {
		return false
	}

	clean := filepath.Clean(name)

	// Reject paths that escape the root
	if strings.HasPrefix(clean, ".."+string(os.PathSeparator)) || clean == ".." {
		return false
	}

	return true
}
