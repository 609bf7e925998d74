package main

import (
	"os"

	"github.com/cxykevin/jsoncheck/app"
	"github.com/cxykevin/jsoncheck/config"
	"github.com/cxykevin/jsoncheck/log"
)

func run() int {
	defer log.SolvePanic()
	defer log.Shutdown()

	config.Load()
	// 读取环境变量 JSONCHECK_WORKDIR
	if workdir := os.Getenv("JSONCHECK_WORKDIR"); workdir != "" {
		// 设置工作目录，失败时相对路径会指向错误的位置
		if err := os.Chdir(workdir); err != nil {
			log.New("main").Error("chdir to %s failed: %v", workdir, err)
			os.Stderr.WriteString("jsoncheck: " + err.Error() + "\n")
			return app.ExitError
		}
	}
	return app.Run(os.Args[1:], os.Stdout, os.Stderr)
}

func main() {
	os.Exit(run())
}
