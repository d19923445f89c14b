package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/matkrin/colord/internal/lsp"
	"github.com/matkrin/colord/internal/server"
	flag "github.com/spf13/pflag"
)

const (
	name    = "colord"
	version = "0.1.0"
)

func main() {
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	logFile := flag.String("log-file", defaultLogFile(), "log file path")
	showVersion := flag.BoolP("version", "V", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s\n", name, version)
		return
	}

	initLogging(*logLevel, *logFile)
	slog.Info("Logging initialized", "level", *logLevel)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Split(lsp.Split)

	state := server.NewState()
	writer := os.Stdout
	srv := server.NewServer(name, version, state, writer)

	for scanner.Scan() {
		msg := scanner.Bytes()
		method, contents, err := lsp.DecodeMessage(msg)
		if err != nil {
			slog.Error("ERROR decoding message", "err", err)
			continue
		}
		srv.HandleMessage(method, contents)
	}
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "colord.log")
}

func initLogging(levelStr string, filename string) {
	level := new(slog.LevelVar)

	var l slog.Level
	switch levelStr {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	level.Set(l)

	logfile, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
	if err != nil {
		panic("No log file")
	}

	handler := slog.NewTextHandler(logfile, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
