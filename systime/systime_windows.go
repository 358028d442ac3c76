/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//go:build windows

package systime

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// GetSystemTimeAdjustment is not surfaced by x/sys/windows, so we go
// through kernel32 directly.
var (
	modkernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	procGetSystemTimeAdjustment = modkernel32.NewProc("GetSystemTimeAdjustment")
)

// osSource reads from the Windows kernel
type osSource struct{}

func fileTimeTicks(ft windows.Filetime) FileTime {
	return FileTime(int64(ft.HighDateTime)<<32 | int64(ft.LowDateTime))
}

// SystemTime queries GetSystemTimeAsFileTime. The kernel call cannot fail.
func (osSource) SystemTime() (FileTime, error) {
	var ft windows.Filetime
	windows.GetSystemTimeAsFileTime(&ft)
	return fileTimeTicks(ft), nil
}

// PreciseSystemTime queries GetSystemTimePreciseAsFileTime
func (osSource) PreciseSystemTime() (FileTime, error) {
	var ft windows.Filetime
	windows.GetSystemTimePreciseAsFileTime(&ft)
	return fileTimeTicks(ft), nil
}

// TimeAdjustment queries GetSystemTimeAdjustment
func (osSource) TimeAdjustment() (Adjustment, error) {
	var adjustment, increment uint32
	var disabled int32 // win32 BOOL
	r1, _, errno := procGetSystemTimeAdjustment.Call(
		uintptr(unsafe.Pointer(&adjustment)),
		uintptr(unsafe.Pointer(&increment)),
		uintptr(unsafe.Pointer(&disabled)),
	)
	if r1 == 0 {
		return Adjustment{}, fmt.Errorf("GetSystemTimeAdjustment: %w", errno)
	}
	return Adjustment{
		Adjustment: adjustment,
		Increment:  increment,
		Disabled:   disabled != 0,
	}, nil
}
