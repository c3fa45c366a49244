package config

import (
	"os"
	"path/filepath"
)

// AppDataDir returns the per-user directory where JSON documents are stored.
// An explicit UCANDUIT_DATA_DIR wins; otherwise the OS-appropriate config
// location is used (XDG_CONFIG_HOME / AppData / Library), with a data folder
// next to the working directory as a last resort.
func AppDataDir() string {
	if custom := os.Getenv("UCANDUIT_DATA_DIR"); custom != "" {
		return custom
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "data")
	}
	return filepath.Join(configDir, "ucanduit")
}

// AudioRootDir returns the bundled audio assets root. The shell's project
// layout keeps public/audio one level above the backend's working directory.
func AudioRootDir() string {
	if custom := os.Getenv("UCANDUIT_AUDIO_ROOT"); custom != "" {
		return custom
	}

	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Join("..", "public", "audio")
	}
	return filepath.Join(filepath.Dir(cwd), "public", "audio")
}
