// Copyright 2023 The Gaugette Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1351_test

import (
	"log"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/gaugette/ssd1351"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use spireg SPI port registry to find the first available SPI bus.
	p, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	// Wiring for a Raspberry Pi: D/C on GPIO24, reset on GPIO25.
	dc := gpioreg.ByName("GPIO24")
	rst := gpioreg.ByName("GPIO25")

	dev, err := ssd1351.NewSPI(p, dc, rst, &ssd1351.DefaultOpts)
	if err != nil {
		log.Fatalf("failed to initialize ssd1351: %v", err)
	}
	if err := dev.Init(); err != nil {
		log.Fatal(err)
	}

	dev.DrawTextScaled(8, 40, "HELLO", 3, 1)
	if err := dev.Display(); err != nil {
		log.Fatal(err)
	}
}
