package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/davidwilemski/photosort/internal/app/run"
	"github.com/davidwilemski/photosort/internal/config"
	"github.com/davidwilemski/photosort/internal/relocate"
)

func main() {
	if code := runCmd(os.Args[1:]); code != 0 {
		os.Exit(code)
	}
}

// runCmd 执行归档流程并返回进程退出码（0 成功，1 失败，2 参数错误）。
func runCmd(args []string) int {
	for _, a := range args {
		if isHelp(a) {
			printUsage()
			return 0
		}
	}

	ca, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "参数错误：%v\n\n", err)
		printUsage()
		return 2
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "读取当前目录失败：%v\n", err)
		return 1
	}

	eff, err := config.LoadEffective(cwd, ca)
	if err != nil {
		// 源文件路径缺失属于用法问题（例如传了纯空白），按参数错误处理。
		if config.Code(err) == config.ErrCodeMissingSource {
			fmt.Fprintf(os.Stderr, "参数错误：%v\n\n", err)
			printUsage()
			return 2
		}
		fmt.Fprintf(os.Stderr, "配置错误（code=%s）：%v\n", config.Code(err), err)
		return 1
	}

	rel := relocate.Select(eff.Renamer)
	fmt.Fprintf(os.Stderr, "归档：%s（策略=%s）\n", eff.SourceAbs, rel.Name())

	res, err := run.Execute(context.Background(), eff, rel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "归档失败（stage=%s code=%s）：%v\n", run.Stage(err), run.Code(err), err)
		return 1
	}

	fmt.Fprintf(os.Stderr, "完成：%s -> %s\n", res.SrcAbs, res.DstAbs)
	return 0
}

// parseArgs 解析位置参数：第 1 个是源文件，第 2 个（可选）是移动策略。
func parseArgs(args []string) (config.CLIArgs, error) {
	var pos []string
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			return config.CLIArgs{}, fmt.Errorf("未知参数 %q", a)
		}
		pos = append(pos, a)
	}

	switch len(pos) {
	case 0:
		return config.CLIArgs{}, fmt.Errorf("缺少源文件路径")
	case 1:
		return config.CLIArgs{Source: pos[0]}, nil
	case 2:
		return config.CLIArgs{Source: pos[0], Renamer: pos[1]}, nil
	default:
		return config.CLIArgs{}, fmt.Errorf("多余的参数：%q", pos[2:])
	}
}

func isHelp(s string) bool {
	switch s {
	case "-h", "--help", "help":
		return true
	}
	return false
}

func printUsage() {
	fmt.Print(`用法：
  photosort <源文件> [git]

参数：
  源文件        要归档的图像文件（如 JPEG/CR2）
  git           用 git mv 执行移动；缺省用普通 rename
  -h, --help    显示本帮助

说明：
  从文件头部提取拍摄日期，把文件移动到
  <主目录>/annex/photos/<年>/<月>/<日>/ 下，文件名保持不变。
  目标目录不存在时逐级创建；移动是最后一步，之前任何失败都不会改动源文件。
`)
}
