// Copyright 2025 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command vbench reports per-operation throughput of the vector kernels
// outside the testing framework, for quick comparisons across hosts. For
// each shape it times a batch of iterations and prints ns/op and lanes
// processed per second.
package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/janpfeifer/go-lanes/lanes"
	lmath "github.com/janpfeifer/go-lanes/lanes/contrib/math"
)

var (
	flagIters = flag.Int("iters", 1_000_000, "iterations per measurement")
	flagOp    = flag.String("op", "", "run only operations whose name contains this substring")
)

type benchmark struct {
	name     string
	numLanes int
	fn       func()
}

// sink variables keep benchmark results observable by the compiler.
var (
	sinkF64 lanes.Vec[float64]
	sinkF32 lanes.Vec[float32]
	sinkI32 lanes.Vec[int32]
	sinkU8  lanes.Vec[uint8]
	sinkSum float64
	sinkAny bool
)

func benchmarks() []benchmark {
	df64 := lanes.DescFor[float64](lanes.W256)
	df32 := lanes.DescFor[float32](lanes.W256)
	di32 := lanes.DescFor[int32](lanes.W256)
	du8 := lanes.DescFor[uint8](lanes.W512)

	af64 := lanes.Iota[float64](df64)
	bf64 := lanes.Broadcast(df64, 1.5)
	af32 := lanes.Iota[float32](df32)
	bf32 := lanes.Broadcast(df32, float32(1.5))
	ai32 := lanes.Iota[int32](di32)
	bi32 := lanes.Broadcast(di32, int32(3))
	au8 := lanes.Iota[uint8](du8)
	bu8 := lanes.Broadcast(du8, uint8(7))

	return []benchmark{
		{"Add/float64x4", df64.Lanes, func() { sinkF64 = lanes.Add(af64, bf64) }},
		{"Add/float32x8", df32.Lanes, func() { sinkF32 = lanes.Add(af32, bf32) }},
		{"Add/uint8x64", du8.Lanes, func() { sinkU8 = lanes.Add(au8, bu8) }},
		{"Mul/float64x4", df64.Lanes, func() { sinkF64 = lanes.Mul(af64, bf64) }},
		{"Mul/int32x8", di32.Lanes, func() { sinkI32 = lanes.Mul(ai32, bi32) }},
		{"Less+AnyTrue/float64x4", df64.Lanes, func() { sinkAny = lanes.Less(af64, bf64).AnyTrue() }},
		{"ReduceSum/float64x4", df64.Lanes, func() { sinkSum = lanes.ReduceSum(af64) }},
		{"Exp/float64x4", df64.Lanes, func() { sinkF64 = lmath.Exp(af64) }},
		{"Exp/float32x8", df32.Lanes, func() { sinkF32 = lmath.Exp(af32) }},
		{"Sqrt/float64x4", df64.Lanes, func() { sinkF64 = lmath.Sqrt(af64) }},
	}
}

func main() {
	flag.Parse()

	fmt.Printf("native widths: %v\n\n", lanes.NativeWidths())
	fmt.Printf("%-24s %12s %16s\n", "operation", "ns/op", "lanes/s")

	iters := *flagIters
	for _, b := range benchmarks() {
		if *flagOp != "" && !strings.Contains(b.name, *flagOp) {
			continue
		}
		start := time.Now()
		for i := 0; i < iters; i++ {
			b.fn()
		}
		ns := float64(time.Since(start).Nanoseconds()) / float64(iters)
		fmt.Printf("%-24s %12.2f %16.3e\n", b.name, ns, float64(b.numLanes)/ns*1e9)
	}
}
