// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/cansyan/cellgrid/internal/logger"
)

var (
	mu          sync.Mutex
	initialized bool
	initErr     error
)

// Init prepares the system clipboard. It is safe to call more than once;
// a failure is remembered and returned again.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	if initialized || initErr != nil {
		return initErr
	}
	if err := clipboard.Init(); err != nil {
		logger.Warn("clipboard: init failed: %v", err)
		initErr = fmt.Errorf("init clipboard: %w", err)
		return initErr
	}
	initialized = true
	logger.Debug("clipboard: initialized")
	return nil
}

// WriteText puts s on the clipboard.
func WriteText(s string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}

// ReadText returns the text on the clipboard, or "" when there is none.
func ReadText() (string, error) {
	if err := Init(); err != nil {
		return "", err
	}
	return string(clipboard.Read(clipboard.FmtText)), nil
}
