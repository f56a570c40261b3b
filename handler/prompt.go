package handler

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

func promptLine(w io.Writer, in *bufio.Reader, label string) string {
	fmt.Fprint(w, label)
	line, _ := in.ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}

// confirmYes 只有明确输入 y/Y 才算确认
func confirmYes(w io.Writer, in *bufio.Reader, label string) bool {
	answer := strings.TrimSpace(promptLine(w, in, label+" [y/N] "))
	return strings.EqualFold(answer, "y")
}
