// Package app 命令行入口逻辑
package app

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cxykevin/jsoncheck/config"
	"github.com/cxykevin/jsoncheck/library/json"
	"github.com/cxykevin/jsoncheck/library/source"
	"github.com/cxykevin/jsoncheck/log"
	"github.com/cxykevin/jsoncheck/policy"
	"github.com/cxykevin/jsoncheck/product"
	"github.com/cxykevin/jsoncheck/storage"
	"github.com/cxykevin/jsoncheck/storage/structs"
)

// 退出码
const (
	ExitOK     = 0
	ExitReject = 1
	ExitError  = 2
)

const previewLimit = 200

// maxDepthLimit -depth 上限，栈按层数一次性分配
const maxDepthLimit = 1 << 20

// errIncomplete 输入结束时文档未闭合
var errIncomplete = errors.New("incomplete document")

var logger *log.LogsObj

type options struct {
	file    string
	charset string
	depth   int
	history bool
	recent  int
	noColor bool
	version bool
	text    string
	literal bool
}

// Result 一次校验的结果
type Result struct {
	Source   string
	Encoding string
	Size     int64
	Digest   string
	Valid    bool
	Accepted bool
	Cause    error
	Offset   int64
	MaxDepth int
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	cfg := config.GlobalConfig
	fs := flag.NewFlagSet("jsoncheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: jsoncheck [flags] <json_string>\n       jsoncheck [flags] -file <path>\n\nflags:\n")
		fs.PrintDefaults()
	}

	opts := &options{}
	fs.StringVar(&opts.file, "file", "", "JSON file to validate")
	fs.StringVar(&opts.charset, "charset", cfg.Checker.Charset, "Input file charset (empty: detect by BOM, otherwise UTF-8)")
	fs.IntVar(&opts.depth, "depth", int(cfg.Checker.MaxDepth), "Maximum nesting depth")
	fs.BoolVar(&opts.history, "history", cfg.History.Enable, "Record the result in the history database")
	fs.IntVar(&opts.recent, "recent", 0, "Show the last N history records and exit")
	fs.BoolVar(&opts.noColor, "no-color", cfg.Report.NoColor, "Disable colored output")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	rest := fs.Args()
	switch {
	case opts.version || opts.recent > 0:
	case opts.file != "" && len(rest) > 0:
		fs.Usage()
		return nil, errors.New("both -file and a text argument given")
	case len(rest) > 1:
		fs.Usage()
		return nil, errors.New("too many arguments")
	case len(rest) == 1:
		opts.text = rest[0]
		opts.literal = true
	}
	if opts.depth < 1 || opts.depth > maxDepthLimit {
		return nil, fmt.Errorf("invalid -depth %d (1..%d)", opts.depth, maxDepthLimit)
	}
	return opts, nil
}

// Run 执行命令行，返回退出码
func Run(args []string, stdout io.Writer, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "jsoncheck: %v\n", err)
		return ExitError
	}

	if opts.version {
		fmt.Fprintln(stdout, product.Banner)
		return ExitOK
	}
	logger = log.New("app")
	logger.Debug("%s args=%d", product.Banner, len(args))

	if opts.history || opts.recent > 0 {
		cfg := config.GlobalConfig.History
		if _, err := storage.InitStorage(cfg.DataPath, cfg.DBFile); err != nil {
			fmt.Fprintf(stderr, "jsoncheck: %v\n", err)
			return ExitError
		}
		defer storage.Close()
	}

	if opts.recent > 0 {
		return showRecent(opts.recent, stdout, stderr)
	}

	if opts.file == "" && !opts.literal {
		// 与无参数时一致：打印用法并按失败退出
		fmt.Fprintln(stderr, "usage: jsoncheck [flags] <json_string>")
		return ExitReject
	}

	rule, err := policy.Compile(config.GlobalConfig.Report.AcceptIf)
	if err != nil {
		logger.Error("bad accept rule: %v", err)
		fmt.Fprintf(stderr, "jsoncheck: %v\n", err)
		return ExitError
	}

	var in *source.Reader
	if opts.literal {
		in = source.String(opts.text)
	} else {
		in, err = source.Open(opts.file, opts.charset)
		if err != nil {
			logger.Error("open input failed: %v", err)
			fmt.Fprintf(stderr, "jsoncheck: %v\n", err)
			return ExitError
		}
	}
	defer in.Close()

	res, err := Check(in, opts.depth)
	if err != nil {
		logger.Error("read %s failed: %v", in.Name(), err)
		fmt.Fprintf(stderr, "jsoncheck: %v\n", err)
		return ExitError
	}

	res.Accepted, err = rule.Eval(policy.Env{
		Valid:    res.Valid,
		Size:     res.Size,
		Source:   res.Source,
		Encoding: res.Encoding,
		Cause:    causeText(res.Cause),
		Depth:    res.MaxDepth,
	})
	if err != nil {
		logger.Error("eval accept rule failed: %v", err)
		fmt.Fprintf(stderr, "jsoncheck: %v\n", err)
		return ExitError
	}

	logger.Info("checked %s (%s, %d bytes): valid=%v accepted=%v cause=%s preview=%s",
		res.Source, res.Encoding, res.Size, res.Valid, res.Accepted, causeText(res.Cause), log.Preview(opts.text, previewLimit))

	if opts.history {
		if last, err := storage.LastByDigest(res.Digest); err == nil && last != nil && last.Accepted != res.Accepted {
			logger.Warn("%s result changed since record #%d: accepted %v -> %v", res.Source, last.ID, last.Accepted, res.Accepted)
		}
		if err := storage.Record(res.record()); err != nil {
			// 历史记录失败不影响校验结果
			logger.Warn("record history failed: %v", err)
		}
	}

	report(stdout, newPainter(stdout, opts.noColor), res, opts)
	if res.Accepted {
		return ExitOK
	}
	return ExitReject
}

// Check 将输入完整喂入校验器
// 返回的 error 只表示读取失败，语法错误记录在 Result 中
func Check(in *source.Reader, maxDepth int) (*Result, error) {
	checker := json.NewWithDepth(maxDepth)
	hash := sha256.New()
	counter := &countingWriter{}

	_, err := io.Copy(io.MultiWriter(hash, counter, checker), in)
	if err != nil && checker.Err() == nil {
		return nil, err
	}
	if checker.Err() != nil {
		// 校验器拒绝后 io.Copy 提前停止，剩余输入仍计入摘要和大小
		if _, err := io.Copy(io.MultiWriter(hash, counter), in); err != nil {
			return nil, err
		}
	}

	res := &Result{
		Source:   in.Name(),
		Encoding: in.Encoding(),
		Size:     counter.n,
		Digest:   hex.EncodeToString(hash.Sum(nil)),
		Valid:    checker.IsComplete(),
		Offset:   checker.Offset(),
		MaxDepth: checker.MaxDepth(),
	}
	switch {
	case checker.Err() != nil:
		res.Cause = checker.Err()
	case !res.Valid:
		res.Cause = errIncomplete
	}
	return res, nil
}

func (r *Result) record() *structs.Results {
	return &structs.Results{
		Source:   r.Source,
		Encoding: r.Encoding,
		Size:     r.Size,
		Digest:   r.Digest,
		Valid:    r.Valid,
		Accepted: r.Accepted,
		Cause:    causeText(r.Cause),
		Offset:   r.Offset,
		MaxDepth: int32(r.MaxDepth),
	}
}

func report(w io.Writer, p painter, res *Result, opts *options) {
	echo := config.GlobalConfig.Report.Echo
	if res.Accepted {
		fmt.Fprintln(w, p.paint(colorGreen, "Parse OK"))
	} else {
		fmt.Fprintln(w, p.paint(colorRed, "FAIL parsing on:"))
	}
	if opts.literal {
		if echo {
			fmt.Fprintln(w, opts.text)
		}
	} else {
		fmt.Fprintln(w, res.Source)
	}
	if res.Cause != nil {
		fmt.Fprintf(w, "%s at offset %d\n", res.Cause, res.Offset)
	}
}

func showRecent(limit int, stdout io.Writer, stderr io.Writer) int {
	results, err := storage.Recent(limit)
	if err != nil {
		fmt.Fprintf(stderr, "jsoncheck: %v\n", err)
		return ExitError
	}
	for _, r := range results {
		status := "OK  "
		if !r.Accepted {
			status = "FAIL"
		}
		line := fmt.Sprintf("%s %s %s %d bytes", time.Unix(int64(r.Time), 0).Format(time.DateTime), status, r.Source, r.Size)
		if r.Cause != "" {
			line += " (" + r.Cause + ")"
		}
		fmt.Fprintln(stdout, strings.TrimSpace(line))
	}
	return ExitOK
}

func causeText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

type countingWriter struct {
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}
