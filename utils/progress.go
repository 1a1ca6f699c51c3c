package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// spinnerRunes holds the animation frames.
const spinnerRunes = `⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏`

const (
	successColor = "\x1b[32m"
	defaultColor = "\x1b[0m"
)

// Spinner is a terminal progress indicator whose message can be swapped
// while it runs, used to tick the relaxation frame counter.
type Spinner struct {
	mu       sync.Mutex
	writer   io.Writer
	interval time.Duration
	message  string
	last     string
	stopChan chan struct{}
}

// NewSpinner instantiates a spinner writing to stderr.
func NewSpinner(msg string, interval time.Duration) *Spinner {
	return &Spinner{
		writer:   os.Stderr,
		interval: interval,
		message:  msg,
		stopChan: make(chan struct{}, 1),
	}
}

// Start runs the animation until Stop is called.
func (s *Spinner) Start() {
	go func() {
		for {
			for _, r := range spinnerRunes {
				select {
				case <-s.stopChan:
					return
				default:
					s.mu.Lock()
					s.clear()
					s.last = fmt.Sprintf("%s%s %c%s", s.message, successColor, r, defaultColor)
					fmt.Fprint(s.writer, s.last)
					s.mu.Unlock()
					time.Sleep(s.interval)
				}
			}
		}
	}()
}

// SetMessage swaps the message shown next to the spinner.
func (s *Spinner) SetMessage(msg string) {
	s.mu.Lock()
	s.message = msg
	s.mu.Unlock()
}

// Stop halts the animation and replaces the spinner line with the final
// message when one is given.
func (s *Spinner) Stop(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clear()
	if len(msg) > 0 {
		fmt.Fprintln(s.writer, msg)
	}
	s.stopChan <- struct{}{}
}

// clear wipes the spinner line. Caller must hold the lock.
func (s *Spinner) clear() {
	if n := utf8.RuneCountInString(s.last); n > 0 {
		fmt.Fprint(s.writer, "\r"+strings.Repeat(" ", n)+"\r")
	}
	s.last = ""
}
