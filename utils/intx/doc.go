// File: doc.go
// Title: Package Documentation for intx
// Description: Package intx provides integer iteration helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial package documentation

// Package intx repeats a function or walks an inclusive integer range.
//
// All helpers are generic over the built-in integer types. Empty ranges
// (end before start for UpTo, end after start for DownTo) and non-positive
// counts for Times call nothing. Ranges ending at the limits of a type stop
// there instead of wrapping around.
//
//	intx.UpTo(3, 5, func(i int) { fmt.Println(i) })   // 3 4 5
//	intx.DownTo(5, 3, func(i int) { fmt.Println(i) }) // 5 4 3
//	for i := range intx.UpToSeq[uint8](250, 255) { ... }
package intx
