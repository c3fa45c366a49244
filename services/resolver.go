package services

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/TheIanM/ucanduit/logger"
)

// relativePrefix marks a directory reference as relative to the application
// image rather than the process working directory.
const relativePrefix = "./"

// PathResolver locates bundled asset directories across the packaging
// layouts the app ships in: dev run, installed bundle, and bundles that keep
// assets under a dist subfolder. It is a first-match-wins probe over a fixed
// list of candidate roots, not a general path canonicalizer.
type PathResolver struct {
	execDir func() (string, error)
	workDir func() (string, error)
}

// NewPathResolver creates a resolver anchored on the running executable and
// the current working directory
func NewPathResolver() *PathResolver {
	return &PathResolver{
		execDir: func() (string, error) {
			exe, err := os.Executable()
			if err != nil {
				return "", err
			}
			return filepath.Dir(exe), nil
		},
		workDir: os.Getwd,
	}
}

// Resolve turns a possibly "./"-prefixed directory reference into a concrete
// filesystem location. References without the prefix are returned untouched.
// When no candidate exists the original string is handed back so the caller's
// existence check produces the error against what was actually requested.
func (r *PathResolver) Resolve(directoryPath string) string {
	if !strings.HasPrefix(directoryPath, relativePrefix) {
		return directoryPath
	}

	relative := strings.TrimPrefix(directoryPath, relativePrefix)
	for _, candidate := range r.Candidates(relative) {
		if _, err := os.Stat(candidate); err == nil {
			logger.L().WithField("path", candidate).Debug("resolved asset directory")
			return candidate
		}
	}

	return directoryPath
}

// Candidates builds the ordered list of locations to probe for a stripped
// relative reference. Executable-relative variants come before
// working-directory-relative ones.
func (r *PathResolver) Candidates(relative string) []string {
	appDir, err := r.execDir()
	if err != nil {
		// Can't locate the executable; anchor on the working directory.
		appDir, _ = r.workDir()
	}
	cwd, _ := r.workDir()

	appParent := filepath.Dir(appDir)
	return []string{
		filepath.Join(appDir, relative),
		filepath.Join(appDir, "dist", relative),
		filepath.Join(appParent, "dist", relative),
		filepath.Join(appParent, relative),
		filepath.Join(cwd, "dist", relative),
		filepath.Join(cwd, relative),
		filepath.Join(filepath.Dir(cwd), relative),
	}
}
