// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package script embeds the lav engine into a Lua VM.
//
// A Runtime exposes the engine under a global `lav` table:
//
//	lav.graphics.setClearColor(r, g, b, a)
//	lav.graphics.present()
//	lav.graphics.rectangle(x, y, w, h)
//	lav.graphics.setColor(r, g, b, a)
//	lav.graphics.translate(x, y)
//	lav.graphics.rotate(angle)
//	lav.graphics.origin()
//	lav.graphics.requestSwapchainRecreation()
//
//	lav.timer.step()
//	lav.timer.getFPS()
//	lav.timer.getTime()
//	lav.timer.getDelta()
//	lav.timer.sleep(seconds)
//
// The script defines optional callbacks on the same table: `lav.load` runs
// once after the chunk is loaded, `lav.draw` runs every frame.
//
// The Runtime is the engine's single serialization point: script callbacks
// and window events are the two sites that can call into the engine from
// different goroutines, so every Runtime entry (LoadFile, Draw, Do) holds
// one mutex scoped to the whole engine instance. The Graphics itself stays
// lock-free.
package script
