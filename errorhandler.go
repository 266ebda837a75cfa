// Copyright 2023 The Gaugette Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1351

import "periph.io/x/conn/v3/gpio"

// errorHandler is a wrapper for error management: the first pin or bus
// failure sticks and every later call becomes a no-op. It holds the Dev by
// pointer because the tracked D/C line level must survive across calls.
type errorHandler struct {
	d   *Dev
	err error
}

func (eh *errorHandler) rstOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.rst.Out(l)
}

func (eh *errorHandler) dcOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	if eh.err = eh.d.dc.Out(l); eh.err == nil {
		eh.d.dataMode = l == gpio.High
	}
}

func (eh *errorHandler) cTx(w []byte) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.c.Tx(w, nil)
}

// sendCommand transmits the opcode and its operands as one write with the
// D/C line low. The line normally idles low; it is only driven when a
// previous sendData left it high.
func (eh *errorHandler) sendCommand(cmd byte, args ...byte) {
	if eh.err != nil {
		return
	}
	if eh.d.dataMode {
		eh.dcOut(gpio.Low)
	}
	eh.cTx(append([]byte{cmd}, args...))
}

// sendData raises the D/C line, transmits data split into chunks no larger
// than the transport's per-call ceiling, and lowers the line again. Some SPI
// implementations reject large single writes, so an unbounded Tx can never
// be assumed.
func (eh *errorHandler) sendData(data []byte) {
	if eh.err != nil {
		return
	}
	eh.dcOut(gpio.High)
	for start := 0; start < len(data) && eh.err == nil; start += eh.d.maxTxSize {
		end := start + eh.d.maxTxSize
		if end > len(data) {
			end = len(data)
		}
		eh.cTx(data[start:end])
	}
	eh.dcOut(gpio.Low)
}
