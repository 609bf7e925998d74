// Package source 读取待校验的输入并统一转换为 UTF-8
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// sniffSize 编码检测读取的字节数
const sniffSize = 1024

// ErrUnknownCharset 未知的编码名
var ErrUnknownCharset = errors.New("unknown charset")

// Reader 输入读取器
type Reader struct {
	io.Reader
	closer   io.Closer
	name     string
	encoding string
}

// Close 关闭底层文件
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// Name 输入来源名称
func (r *Reader) Name() string {
	return r.name
}

// Encoding 实际使用的编码名
func (r *Reader) Encoding() string {
	return r.encoding
}

// Open 打开文件，label 为空时自动检测编码
func Open(path string, label string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	r, err := wrap(file, path, label)
	if err != nil {
		file.Close()
		return nil, err
	}
	r.closer = file
	return r, nil
}

// String 包装命令行传入的文本，按 UTF-8 原样读取
func String(s string) *Reader {
	return &Reader{
		Reader:   strings.NewReader(s),
		name:     "<argument>",
		encoding: "utf-8",
	}
}

// NewReader 包装任意 reader，label 含义同 Open
func NewReader(in io.Reader, name string, label string) (*Reader, error) {
	return wrap(in, name, label)
}

func wrap(in io.Reader, name string, label string) (*Reader, error) {
	br := bufio.NewReaderSize(in, sniffSize)

	var enc encoding.Encoding
	var encName string
	if label != "" {
		e, n := charset.Lookup(label)
		if e == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCharset, label)
		}
		enc, encName = e, n
	} else {
		// 只信任 BOM，其余情况按 UTF-8 原样读取
		head, err := br.Peek(sniffSize)
		if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		var certain bool
		enc, encName, certain = charset.DetermineEncoding(head, "application/json")
		if !certain {
			enc, encName = encoding.Nop, "utf-8"
		}
	}

	r := &Reader{name: name, encoding: encName}
	if isUTF8(enc, encName) {
		// 不经过解码器，非法字节保持原样
		r.Reader = skipBOM(br)
		return r, nil
	}
	r.Reader = skipBOM(bufio.NewReader(transform.NewReader(br, enc.NewDecoder())))
	return r, nil
}

func isUTF8(enc encoding.Encoding, name string) bool {
	return enc == unicode.UTF8 || enc == encoding.Nop || strings.EqualFold(name, "utf-8")
}

// skipBOM 去掉开头的 UTF-8 BOM
func skipBOM(br *bufio.Reader) io.Reader {
	head, _ := br.Peek(3)
	if len(head) == 3 && head[0] == 0xef && head[1] == 0xbb && head[2] == 0xbf {
		br.Discard(3)
	}
	return br
}
