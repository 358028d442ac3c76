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

//go:build !windows

package systime

// osSource is a stub: the queried APIs only exist in the Windows kernel
type osSource struct{}

func (osSource) SystemTime() (FileTime, error) {
	return 0, ErrUnsupported
}

func (osSource) PreciseSystemTime() (FileTime, error) {
	return 0, ErrUnsupported
}

func (osSource) TimeAdjustment() (Adjustment, error) {
	return Adjustment{}, ErrUnsupported
}
