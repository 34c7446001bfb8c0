package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen
	crashLog    logrus.FieldLogger

	// replaced in tests
	crashOut  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// SetCrashScreen registers the screen to restore before a crash report is printed
func SetCrashScreen(s tcell.Screen) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// SetCrashLogger registers a logger that also records the crash
func SetCrashLogger(l logrus.FieldLogger) {
	crashMu.Lock()
	crashLog = l
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}
	stack := debug.Stack()

	crashMu.Lock()
	defer crashMu.Unlock()

	// Terminal must be restored before anything is printed
	if crashScreen != nil {
		crashScreen.Fini()
		crashScreen = nil
	}

	if crashLog != nil {
		crashLog.WithField("stack", string(stack)).Errorf("crash: %v", r)
	}

	fmt.Fprintf(crashOut, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\n%s\n", stack)

	crashExit(1)
}

// Recover is deferred at the top of main and every goroutine
func Recover() {
	if r := recover(); r != nil {
		HandleCrash(r)
	}
}

// Protect wraps an errgroup function with panic recovery
func Protect(fn func() error) func() error {
	return func() error {
		defer Recover()
		return fn()
	}
}
