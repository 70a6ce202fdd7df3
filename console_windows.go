//go:build windows

package main

import (
	"os/exec"
	"syscall"
	"unsafe"
)

var (
	modkernel32          = syscall.NewLazyDLL("kernel32.dll")
	procSetConsoleTitleW = modkernel32.NewProc("SetConsoleTitleW")
	procGetConsoleTitleW = modkernel32.NewProc("GetConsoleTitleW")
	procSetConsoleCP     = modkernel32.NewProc("SetConsoleCP")
	procSetConsoleOutCP  = modkernel32.NewProc("SetConsoleOutputCP")
)

// configureConsole switches the console to UTF-8 so the box-drawing border
// and the summary box render.
func configureConsole() {
	const cpUTF8 = 65001
	_ = exec.Command("cmd", "/c", "chcp 65001 >nul").Run()
	_, _, _ = procSetConsoleOutCP.Call(uintptr(cpUTF8))
	_, _, _ = procSetConsoleCP.Call(uintptr(cpUTF8))
}

// setTerminalTitle returns a func that puts back the title it replaced.
func setTerminalTitle(title string) (restore func()) {
	buf := make([]uint16, 1024)
	n, _, _ := procGetConsoleTitleW.Call(uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	previous := syscall.UTF16ToString(buf[:n])

	consoleTitle(title)
	return func() {
		if n > 0 {
			consoleTitle(previous)
		}
	}
}

func consoleTitle(title string) {
	utf16, err := syscall.UTF16PtrFromString(title)
	if err != nil {
		return
	}
	procSetConsoleTitleW.Call(uintptr(unsafe.Pointer(utf16)))
}
