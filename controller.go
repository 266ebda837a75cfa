// Copyright 2023 The Gaugette Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1351

import "github.com/gaugette/ssd1351/image16bit"

// SSD1351 commands.
const (
	setColumn      byte = 0x15
	setRow         byte = 0x75
	writeRAM       byte = 0x5C
	readRAM        byte = 0x5D
	setRemap       byte = 0xA0
	startLine      byte = 0xA1
	displayOffset  byte = 0xA2
	displayAllOff  byte = 0xA4
	displayAllOn   byte = 0xA5
	normalDisplay  byte = 0xA6
	invertDisplay  byte = 0xA7
	functionSelect byte = 0xAB
	displayOff     byte = 0xAE
	displayOn      byte = 0xAF
	precharge      byte = 0xB1
	displayEnhance byte = 0xB2
	clockDiv       byte = 0xB3
	setVSL         byte = 0xB4
	setGPIO        byte = 0xB5
	precharge2     byte = 0xB6
	setGray        byte = 0xB8
	useLUT         byte = 0xB9
	prechargeLevel byte = 0xBB
	vcomH          byte = 0xBE
	contrastABC    byte = 0xC1
	contrastMaster byte = 0xC7
	muxRatio       byte = 0xCA
	horizScroll    byte = 0x96
	stopScroll     byte = 0x9E
	startScroll    byte = 0x9F
	commandLock    byte = 0xFD
)

// Memory addressing modes for setRemap.
const (
	memoryModeHoriz byte = 0x00
	memoryModeVert  byte = 0x01
)

// controller is the command/data framing channel to the panel. Commands are
// transmitted with the D/C line low, data with it high. The bus is
// write-only; there is no acknowledgment and no retry.
type controller interface {
	sendCommand(cmd byte, args ...byte)
	sendData(data []byte)
}

// initDisplay issues the 128x128 configuration stream. The order is
// significant; the panel latches proprietary commands only after the unlock
// pair.
func initDisplay(ctrl controller) {
	ctrl.sendCommand(commandLock, 0x12)
	ctrl.sendCommand(commandLock, 0xB1)
	ctrl.sendCommand(displayOff)
	ctrl.sendCommand(clockDiv, 0xF1)
	ctrl.sendCommand(muxRatio, 127)
	ctrl.sendCommand(setRemap, 0x74)
	ctrl.sendCommand(setColumn, 0x00, 0x7F)
	ctrl.sendCommand(setRow, 0x00, 0x7F)
	ctrl.sendCommand(startLine, 0x00)
	ctrl.sendCommand(displayOffset, 0x00)
	ctrl.sendCommand(setGPIO, 0x00)
	ctrl.sendCommand(functionSelect, 0x01)
	ctrl.sendCommand(precharge, 0x32)
	ctrl.sendCommand(vcomH, 0x05)
	ctrl.sendCommand(normalDisplay)
	ctrl.sendCommand(contrastABC, 0xC8, 0x80, 0xC8)
	ctrl.sendCommand(contrastMaster, 0x0F)
	ctrl.sendCommand(setVSL, 0xA0, 0xB5, 0x55)
	ctrl.sendCommand(precharge2, 0x01)
	ctrl.sendCommand(displayOn)
}

// displayBlock transfers a window of bitmap to the panel, starting at the
// given row and column.
//
// Both row and bitmap height must be multiples of 8: the panel addresses
// rows in 8-row pages and the division below truncates. This is a caller
// contract, not a checked precondition.
//
// colOffset selects the first buffer column of the transfer. Because the
// buffer is column-major, the window is one contiguous slice of Pix.
func displayBlock(ctrl controller, bitmap *image16bit.VerticalPage, row, col, colCount, colOffset int) {
	pageCount := bitmap.Rect.Dy() >> 3
	pageStart := row >> 3
	pageEnd := pageStart + pageCount - 1
	colStart := col
	colEnd := col + colCount - 1
	ctrl.sendCommand(setRemap, memoryModeVert)
	ctrl.sendCommand(setRow, byte(pageStart), byte(pageEnd))
	ctrl.sendCommand(setColumn, byte(colStart), byte(colEnd))
	start := colOffset * pageCount
	length := colCount * pageCount
	ctrl.sendData(bitmap.Pix[start : start+length])
}
