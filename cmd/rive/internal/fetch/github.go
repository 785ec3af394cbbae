package fetch

import (
	"context"
	"encoding/json"
	"fmt"
)

// GitHubRepo is the repository the provider library is released from.
const GitHubRepo = "go-drift/rive"

// Release endpoints. Variables so tests can point them at a local server.
var (
	LatestReleaseURL    = "https://api.github.com/repos/" + GitHubRepo + "/releases/latest"
	ReleaseDownloadBase = "https://github.com/" + GitHubRepo + "/releases/download"
)

// Manifest represents the manifest.json file in a release.
type Manifest struct {
	// ABI is the boundary version the released library implements.
	ABI       uint32                      `json:"abi"`
	Platforms map[string]PlatformManifest `json:"platforms"`
}

// PlatformManifest contains checksum information for a platform.
type PlatformManifest struct {
	SHA256 string `json:"sha256"`
}

// ForPlatform returns the entry for platform ("linux_amd64") after
// checking that the release implements ABI major version abi.
func (m *Manifest) ForPlatform(platform string, abi uint32) (PlatformManifest, error) {
	if m.ABI != abi {
		return PlatformManifest{}, fmt.Errorf("release implements ABI v%d, this CLI needs v%d", m.ABI, abi)
	}
	pm, ok := m.Platforms[platform]
	if !ok {
		return PlatformManifest{}, fmt.Errorf("release has no library for %s", platform)
	}
	if pm.SHA256 == "" {
		return PlatformManifest{}, fmt.Errorf("release entry for %s has no checksum", platform)
	}
	return pm, nil
}

// releaseResponse is the GitHub API response for a release.
type releaseResponse struct {
	TagName string `json:"tag_name"`
}

// FetchLatestRelease fetches the latest release tag from GitHub.
func FetchLatestRelease(ctx context.Context, d *Downloader) (string, error) {
	body, err := d.DownloadJSON(ctx, LatestReleaseURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch latest release: %w", err)
	}

	var resp releaseResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse release response: %w", err)
	}

	if resp.TagName == "" {
		return "", fmt.Errorf("no tag_name in release response")
	}

	return resp.TagName, nil
}

// FetchManifest downloads and parses the manifest.json for a release.
func FetchManifest(ctx context.Context, d *Downloader, version string) (*Manifest, error) {
	url := ManifestURL(version)
	body, err := d.DownloadJSON(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	return &m, nil
}

// ManifestURL returns the URL for the manifest.json of a release.
func ManifestURL(version string) string {
	return fmt.Sprintf("%s/%s/manifest.json", ReleaseDownloadBase, version)
}

// TarballName returns the archive name for a platform like "linux_amd64".
func TarballName(version, platform string) string {
	return fmt.Sprintf("rive-abi-%s-%s.tar.gz", version, platform)
}

// TarballURL returns the download URL for a platform tarball.
func TarballURL(version, platform string) string {
	return fmt.Sprintf("%s/%s/%s", ReleaseDownloadBase, version, TarballName(version, platform))
}
