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

/*
Package systime is a thin bridge to the Windows system clock facilities.

It exposes two kernel queries:
  - GetSystemTimeAsFileTime (and its sub-microsecond sibling
    GetSystemTimePreciseAsFileTime), returning the wall clock as a 64-bit
    count of 100ns ticks since 1601-01-01 UTC
  - GetSystemTimeAdjustment, returning how the kernel currently slews the
    clock: how many ticks get added per timer interrupt, the nominal
    interrupt interval, and whether periodic adjustment is disabled.

Queries are stateless reads of kernel counters with no shared buffers,
so everything here is safe to call from multiple goroutines.

The package keeps two surfaces. The regular one returns typed values and
explicit errors. The legacy one (Get, GetAdjustment) reproduces bit-exactly
the int64 encodings that embedding hosts historically consumed, including
the in-band -1 failure sentinel and the bit 63 disabled-flag overlap; see
the Adjustment.Pack documentation before relying on either.

On non-Windows platforms every query fails with ErrUnsupported.
*/
package systime
