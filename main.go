package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"

	"github.com/TheIanM/ucanduit/cmd"
	"github.com/TheIanM/ucanduit/config"
	"github.com/TheIanM/ucanduit/logger"
	"github.com/TheIanM/ucanduit/services"
	"github.com/TheIanM/ucanduit/types"
)

func main() {
	// Load .env if present; real environment variables win either way.
	_ = godotenv.Load()
	logger.Init()

	var (
		scanDir string
		summary bool
		server  bool
		port    int
	)

	flag.StringVar(&scanDir, "scan", "", "Scan a directory for audio files and exit")
	flag.BoolVar(&summary, "summary", false, "Summarize the bundled audio root and exit")
	flag.BoolVar(&server, "server", false, "Start in web server mode")
	flag.IntVar(&port, "port", 8080, "Port for web server mode")
	flag.Parse()

	// Server mode takes precedence
	if server {
		cmd.StartWebServer(port)
		return
	}

	resolver := services.NewPathResolver()
	scanner := services.NewAudioScanner(resolver)

	if scanDir != "" {
		runScan(scanner, scanDir)
		return
	}

	if summary {
		runSummary(scanner)
		return
	}

	flag.Usage()
}

// runScan scans a single directory and prints what it finds
func runScan(scanner *services.AudioScanner, dir string) {
	contents, err := scanner.ScanDirectory(dir)
	if err != nil {
		logger.L().WithError(err).Fatal("scan failed")
	}

	for _, file := range contents.Files {
		fmt.Printf("%-40s %8d bytes  %s\n", file.Name, file.Size, file.Extension)
	}
	fmt.Printf("%d audio files in %s\n", contents.Count, contents.Directory)
}

// runSummary counts audio files per subdirectory of the bundled audio root,
// with a progress bar across subdirectories since large libraries can take a
// moment on cold disks
func runSummary(scanner *services.AudioScanner) {
	root := config.AudioRootDir()
	entries, err := os.ReadDir(root)
	if err != nil {
		logger.L().WithError(err).WithField("root", root).Fatal("cannot read audio root")
	}

	var subdirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, entry.Name())
		}
	}

	bar := progressbar.Default(int64(len(subdirs)), "counting audio files")
	var summaries []types.AudioDirSummary
	for _, name := range subdirs {
		contents, err := scanner.ScanDirectory(filepath.Join(root, name))
		if err == nil && contents.Count > 0 {
			summaries = append(summaries, types.AudioDirSummary{
				Name:      name,
				Path:      "/audio/" + name,
				FileCount: contents.Count,
			})
		}
		bar.Add(1)
	}

	fmt.Println()
	for _, s := range summaries {
		fmt.Printf("%-30s %4d files\n", s.Path, s.FileCount)
	}
}
