//go:build windows

package utfcodec

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Conversion flags from winnls.h.
const (
	mbErrInvalidChars = 0x00000008
	wcErrInvalidChars = 0x00000080
)

var (
	modkernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procWideCharToMultiByte = modkernel32.NewProc("WideCharToMultiByte")
)

// Windows is a Codec that delegates to the WideCharToMultiByte and
// MultiByteToWideChar conversion primitives in kernel32.
//
// Status values are the raw error numbers reported by GetLastError.
var Windows Codec = windowsCodec{}

type windowsCodec struct{}

// UTF16ToUTF8 measures or transcodes a UTF-16 code unit sequence into
// UTF-8 bytes.
func (windowsCodec) UTF16ToUTF8(src []uint16, srcLen int32, dst []byte, strict bool) (int32, Status) {
	if srcLen <= 0 || int64(srcLen) > int64(len(src)) {
		return 0, StatusInvalidParameter
	}

	var flags uint32
	if strict {
		flags = wcErrInvalidChars
	}

	var dstPtr *byte
	var dstLen int32
	if dst != nil {
		if len(dst) == 0 {
			return 0, StatusInsufficientBuffer
		}
		dstPtr = &dst[0]
		dstLen = int32(len(dst))
	}

	r0, _, e := procWideCharToMultiByte.Call(
		uintptr(windows.CP_UTF8),
		uintptr(flags),
		uintptr(unsafe.Pointer(&src[0])),
		uintptr(srcLen),
		uintptr(unsafe.Pointer(dstPtr)),
		uintptr(dstLen),
		0,
		0)
	if r0 == 0 {
		if errno, ok := e.(syscall.Errno); ok && errno != 0 {
			return 0, Status(errno)
		}
		return 0, StatusInvalidParameter
	}

	return int32(r0), StatusNone
}

// UTF8ToUTF16 measures or transcodes a UTF-8 byte sequence into UTF-16
// code units.
func (windowsCodec) UTF8ToUTF16(src []byte, srcLen int32, dst []uint16, strict bool) (int32, Status) {
	if srcLen <= 0 || int64(srcLen) > int64(len(src)) {
		return 0, StatusInvalidParameter
	}

	var flags uint32
	if strict {
		flags = mbErrInvalidChars
	}

	var dstPtr *uint16
	var dstLen int32
	if dst != nil {
		if len(dst) == 0 {
			return 0, StatusInsufficientBuffer
		}
		dstPtr = &dst[0]
		dstLen = int32(len(dst))
	}

	n, err := windows.MultiByteToWideChar(windows.CP_UTF8, flags, &src[0], srcLen, dstPtr, dstLen)
	if n == 0 {
		if errno, ok := err.(syscall.Errno); ok && errno != 0 {
			return 0, Status(errno)
		}
		return 0, StatusInvalidParameter
	}

	return n, StatusNone
}
