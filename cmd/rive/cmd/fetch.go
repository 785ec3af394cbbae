package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-drift/rive/cmd/rive/internal/cache"
	"github.com/go-drift/rive/cmd/rive/internal/fetch"
	"github.com/go-drift/rive/pkg/abi"
	"github.com/go-drift/rive/pkg/abi/native"
)

func init() {
	RegisterCommand(&Command{
		Name:  "fetch",
		Short: "Download the prebuilt provider library",
		Long: `Download the prebuilt provider library for this platform from GitHub
Releases and verify its checksum.

The version is determined in this order:
  1. --version flag
  2. RIVE_VERSION environment variable
  3. CLI version (for release builds)
  4. Latest release from GitHub (fallback)

Releases built for a different ABI major version are refused.
Libraries are stored in: ~/.rive/lib/<version>/<goos>_<goarch>/`,
		Usage: "rive fetch [--version VERSION] [--force]",
		Run:   runFetch,
	})
}

// FetchOptions configures a library download.
type FetchOptions struct {
	Version string // Override version (empty = auto-detect)
	// Force downloads even when the library is already cached.
	Force bool
}

func runFetch(args []string) error {
	p, err := flagSpec{valued: []string{"--version"}, switches: []string{"--force"}}.parse(args)
	if err != nil {
		return err
	}
	if len(p.positional) > 0 {
		return fmt.Errorf("unexpected argument %q", p.positional[0])
	}
	return Fetch(context.Background(), FetchOptions{Version: p.str("--version", ""), Force: p.set["--force"]})
}

// Fetch downloads and unpacks the provider library into the cache.
func Fetch(ctx context.Context, opts FetchOptions) error {
	d := fetch.DefaultDownloader()
	d.UserAgent = "rive-cli/" + Version

	version, err := resolveFetchVersion(ctx, d, opts.Version)
	if err != nil {
		return err
	}

	dest, err := cache.VersionDir(version)
	if err != nil {
		return err
	}
	lib := filepath.Join(dest, native.LibraryName())
	if !opts.Force {
		if _, err := os.Stat(lib); err == nil {
			fmt.Fprintf(stdout, "Library %s already cached at %s (use --force to download again)\n", version, lib)
			return nil
		}
	}

	fmt.Fprintf(stdout, "Fetching rive provider %s for %s...\n", version, cache.Platform())
	fmt.Fprintln(stdout, "  Downloading manifest...")
	manifest, err := fetch.FetchManifest(ctx, d, version)
	if err != nil {
		return err
	}
	entry, err := manifest.ForPlatform(cache.Platform(), abi.Version)
	if err != nil {
		return fmt.Errorf("%s: %w", version, err)
	}

	if err := fetchPlatform(ctx, d, version, entry.SHA256, dest); err != nil {
		return fmt.Errorf("failed to fetch %s: %w", cache.Platform(), err)
	}
	fmt.Fprintf(stdout, "Provider library extracted to %s\n", dest)
	return nil
}

// resolveFetchVersion normalizes each candidate in turn and falls back to
// the next when normalization rejects it. An explicit flag must be valid.
func resolveFetchVersion(ctx context.Context, d *fetch.Downloader, flag string) (string, error) {
	if flag != "" {
		version := cache.NormalizeVersion(flag)
		if version == "" {
			return "", fmt.Errorf("invalid version %q (pseudo-versions and dev builds are not supported)\n\nUse a release version like v0.2.0 or omit --version to fetch latest", flag)
		}
		return version, nil
	}
	if version := cache.NormalizeVersion(os.Getenv("RIVE_VERSION")); version != "" {
		return version, nil
	}
	if version := cache.NormalizeVersion(Version); version != "" {
		return version, nil
	}

	fmt.Fprintln(stdout, "Fetching latest release version from GitHub...")
	latest, err := fetch.FetchLatestRelease(ctx, d)
	if err != nil {
		return "", fmt.Errorf("failed to determine version: %w\n\nSet RIVE_VERSION or use --version flag", err)
	}
	version := cache.NormalizeVersion(latest)
	if version == "" {
		return "", fmt.Errorf("latest release tag %q is not a valid version", latest)
	}
	return version, nil
}

func fetchPlatform(ctx context.Context, d *fetch.Downloader, version, expectedSHA256, dest string) error {
	platform := cache.Platform()
	tarballName := fetch.TarballName(version, platform)

	tmpDir, err := os.MkdirTemp("", "rive-fetch-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	tarPath := filepath.Join(tmpDir, tarballName)
	fmt.Fprintf(stdout, "  Downloading %s...\n", tarballName)
	if err := d.DownloadVerified(ctx, fetch.TarballURL(version, platform), tarPath, expectedSHA256); err != nil {
		return err
	}

	fmt.Fprintln(stdout, "  Extracting...")
	if err := fetch.ExtractTarGz(tarPath, dest); err != nil {
		return fmt.Errorf("failed to extract tarball: %w", err)
	}
	return nil
}
