// Copyright 2023 The Gaugette Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1351 controls an SSD1351 128x128 color OLED display via SPI.
//
// The bus is write-only; a D/C GPIO pin frames every transfer as either a
// command or pixel data, and an active-low reset pin starts the panel's
// initialization. Drawing happens in an off-chip column-major framebuffer
// (see the image16bit package) and reaches the panel only when one of the
// Display methods streams a rectangular window of it.
//
// Text can be rendered with the bundled fixed 5x8 font or with
// variable-width kerned bitmap fonts (see the font and fontgen packages).
//
// # Datasheet
//
// https://www.hpinfotech.ro/SSD1351.pdf
package ssd1351
