package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// prompter reads operator answers one line at a time. Lines are read on a
// background goroutine so a pending prompt still observes cancellation.
type prompter struct {
	in  io.Reader
	out io.Writer

	once  sync.Once
	lines chan lineResult
}

type lineResult struct {
	line string
	err  error
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: in, out: out}
}

func (p *prompter) start() {
	p.lines = make(chan lineResult)
	go func() {
		defer close(p.lines)
		reader := bufio.NewReader(p.in)
		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				p.lines <- lineResult{line: line}
			}
			if err != nil {
				p.lines <- lineResult{err: err}
				return
			}
		}
	}()
}

// ask prints label and returns the trimmed answer. Closed input yields io.EOF.
func (p *prompter) ask(ctx context.Context, label string) (string, error) {
	p.once.Do(p.start)
	_, _ = fmt.Fprint(p.out, label)
	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(p.out)
		return "", ctx.Err()
	case res, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			_, _ = fmt.Fprintln(p.out)
			return "", res.err
		}
		return strings.TrimSpace(res.line), nil
	}
}
