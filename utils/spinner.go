package utils

import (
	"fmt"
	"io"
	"os"
	"time"
)

// 终端转圈进度指示
type Spinner struct {
	writer   io.Writer
	message  string
	delay    time.Duration
	stopChan chan struct{}
}

func NewSpinner(msg string, d time.Duration) *Spinner {
	return &Spinner{
		writer:   os.Stderr,
		message:  msg,
		delay:    d,
		stopChan: make(chan struct{}),
	}
}

func (s *Spinner) Start() {
	go func() {
		for {
			for _, r := range `⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏` {
				select {
				case <-s.stopChan:
					return
				default:
					fmt.Fprintf(s.writer, "\r%s %c", s.message, r)
					time.Sleep(s.delay)
				}
			}
		}
	}()
}

func (s *Spinner) Stop() {
	close(s.stopChan)
	fmt.Fprintf(s.writer, "\r\033[K")
}
