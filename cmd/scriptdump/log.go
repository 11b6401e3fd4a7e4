// 为命令行工具配置结构化日志：控制台彩色输出叠加滚动文件输出。

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

const logName = "scriptdump"

// setLog wires logrus the way the wider project's SetLog does: a JSON
// rotating file hook plus a colored, timestamped console formatter, so
// this demo binary's output matches the rest of the codebase's logs
// instead of inventing its own shape.
func setLog(logDir string) error {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	filename := filepath.Join(logDir, fmt.Sprintf("%s.log", logName))
	rotateFileHook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   filename,
		MaxSize:    50,
		MaxBackups: 3,
		MaxAge:     28,
		Level:      logrus.InfoLevel,
		Formatter: &logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		},
	})
	if err != nil {
		return fmt.Errorf("init rotating file hook: %w", err)
	}

	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetOutput(colorable.NewColorableStdout())
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC822,
	})
	logrus.AddHook(rotateFileHook)
	return nil
}
