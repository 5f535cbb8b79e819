package core

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

type Scanner struct {
	reader  *bufio.Reader
	LastTag Tag
	err     error
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

func (s *Scanner) Next() bool {
	// 1. 读取 Code 行
	codeLine, err := s.reader.ReadString('\n')
	if err != nil && codeLine == "" {
		if err != io.EOF {
			s.err = err
		}
		return false
	}

	codeStr := strings.TrimSpace(codeLine)
	if codeStr == "" { // 跳过空行
		return s.Next()
	}

	code, err := strconv.Atoi(codeStr)
	if err != nil {
		s.err = err
		return false
	}

	// 2. 读取 Value 行
	valueLine, err := s.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		s.err = err
		return false
	}
	if valueLine == "" && err == io.EOF {
		// Code 行没有配对的 Value 行，属于截断文件
		s.err = io.ErrUnexpectedEOF
		return false
	}

	// 去掉行尾的换行符，但保留 Value 开头的空格（DXF 规范要求）
	value := strings.TrimRight(valueLine, "\r\n")

	s.LastTag = Tag{Code: code, Value: value}
	return true
}

func (s *Scanner) Err() error {
	return s.err
}
