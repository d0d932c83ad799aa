package main

/*
#include <stdlib.h>
#include "callbacks.h"
*/
import "C"

import (
	"unsafe"

	interfaces "interop/internal/domain/interfaces"
)

// cHost forwards control calls to the host's function table.
type cHost struct {
	table *C.qc_callbacks
}

var _ interfaces.HostCallbacks = cHost{}

// hostFrom returns nil for a nil table so sessions can reject it.
func hostFrom(table *C.qc_callbacks) interfaces.HostCallbacks {
	if table == nil {
		return nil
	}
	return cHost{table: table}
}

func (h cHost) SetStartDate(year, month, day int) {
	C.qc_set_start_date(h.table, C.int32_t(year), C.int32_t(month), C.int32_t(day))
}

func (h cHost) SetEndDate(year, month, day int) {
	C.qc_set_end_date(h.table, C.int32_t(year), C.int32_t(month), C.int32_t(day))
}

func (h cHost) AddEquity(ticker string, resolution interfaces.Resolution) {
	cs := C.CString(ticker)
	defer C.free(unsafe.Pointer(cs))
	C.qc_add_equity(h.table, cs, C.int32_t(resolution))
}

func (h cHost) History(ticker string, periods int, resolution interfaces.Resolution) {
	cs := C.CString(ticker)
	defer C.free(unsafe.Pointer(cs))
	C.qc_history(h.table, cs, C.int32_t(periods), C.int32_t(resolution))
}
