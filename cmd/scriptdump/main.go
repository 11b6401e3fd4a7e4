// scriptdump 是 txscript 包的一个小型命令行外壳：解析/分类单个脚本，
// 或者扫描一个目录一次，对其中每个 .script 文件重复同样的报告，然后等待终止信号。
//
// 这个二进制文件本身不属于核心规范范围，只是把核心库接到项目惯用的
// 日志、文件系统与优雅关闭这套外围基础设施上。
package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/sirupsen/logrus"
	death "github.com/vrecan/death/v3"

	"github.com/qinglongcn/bpfschain/txscript"
)

func main() {
	if err := setLog("scriptdump_logs"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if len(os.Args) < 3 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "dump":
		runDump(os.Args[2])
	case "watch":
		runWatch(os.Args[2])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: scriptdump dump <hex-or-text-script>")
	fmt.Fprintln(os.Stderr, "       scriptdump watch <directory-of-.script-files>")
}

// runDump parses a single script given on the command line, in either its
// hex or token text form, and logs its classification and disassembly.
func runDump(input string) {
	s, err := txscript.ParseText(input)
	if err != nil {
		logrus.WithError(err).Fatal("无法解析脚本")
	}
	report(input, s)
}

// runWatch scans dir once for ".script" files, reports each, then blocks
// until SIGINT/SIGTERM so the process can be used as a long-running
// sidecar in a shell pipeline; death.WaitForDeath mirrors the shutdown
// pattern the wider project's CloseDB uses for the blockchain database.
func runWatch(dir string) {
	store := newScriptStore(dir)
	names, err := store.List()
	if err != nil {
		logrus.WithError(err).Fatal("无法读取脚本目录")
	}

	for _, name := range names {
		text, err := store.Read(name)
		if err != nil {
			logrus.WithError(err).WithField("file", name).Error("无法读取脚本文件")
			continue
		}
		s, err := txscript.ParseText(text)
		if err != nil {
			logrus.WithError(err).WithField("file", name).Error("无法解析脚本")
			continue
		}
		report(name, s)
	}

	logrus.Infof("已处理 %d 个脚本文件，等待终止信号…", len(names))
	d := death.NewDeath(syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	d.WaitForDeathWithFunc(func() {
		logrus.Info("收到终止信号，退出")
	})
}

func report(label string, s *txscript.Script) {
	logrus.WithFields(logrus.Fields{
		"label":       label,
		"class":       s.Classify().String(),
		"isStandard":  s.IsStandard(),
		"isPushOnly":  s.IsPushOnly(),
		"disasm":      txscript.RenderText(s),
		"chunkCount":  s.Len(),
		"unspendable": s.IsUnspendable(),
	}).Info("脚本报告")
}
