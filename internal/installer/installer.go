// Package installer performs the filesystem half of a deployment: it writes
// the rendered config into sites-available and points a sites-enabled
// symlink at it.
package installer

import (
	"os"
	"path/filepath"

	"github.com/proxysite/proxysite/internal/deploy"
	"github.com/proxysite/proxysite/internal/errors"
)

const (
	availableDir = "sites-available"
	enabledDir   = "sites-enabled"

	dirMode  = 0755
	fileMode = 0644
)

// Installer writes site configs into the available/enabled directory layout.
// It implements deploy.Installer.
type Installer struct{}

// New creates an Installer.
func New() *Installer {
	return &Installer{}
}

// Install writes content to <root>/sites-available/<filename> and (re)creates
// the <root>/sites-enabled/<filename> symlink pointing at it. Missing
// directories are created. Re-running with the same arguments yields the same
// final state: the file is replaced atomically via a temp-file rename and an
// existing entry at the symlink path is removed before linking.
//
// Side effects are confined to the two named paths. Errors are classified
// into the IO permission / not-found / other categories.
func (i *Installer) Install(root, filename, content string) (deploy.InstalledSite, error) {
	available := filepath.Join(root, availableDir)
	enabled := filepath.Join(root, enabledDir)

	for _, dir := range []string{available, enabled} {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return deploy.InstalledSite{}, errors.IO(dir, err)
		}
	}

	configPath := filepath.Join(available, filename)
	if err := writeFileAtomic(configPath, []byte(content)); err != nil {
		return deploy.InstalledSite{}, errors.IO(configPath, err)
	}

	enabledPath := filepath.Join(enabled, filename)
	// Lstat, not Stat: a dangling symlink still occupies the path.
	if _, err := os.Lstat(enabledPath); err == nil {
		if err := os.Remove(enabledPath); err != nil {
			return deploy.InstalledSite{}, errors.IO(enabledPath, err)
		}
	} else if !os.IsNotExist(err) {
		return deploy.InstalledSite{}, errors.IO(enabledPath, err)
	}
	if err := os.Symlink(configPath, enabledPath); err != nil {
		return deploy.InstalledSite{}, errors.IO(enabledPath, err)
	}

	return deploy.InstalledSite{
		ConfigPath:  configPath,
		EnabledPath: enabledPath,
	}, nil
}

// writeFileAtomic writes data to a temp file in the target's directory and
// renames it into place, so a concurrent reader never observes a partial
// config file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
