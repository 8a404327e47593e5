// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx_test

import (
	"errors"
	"fmt"

	"code.hybscloud.com/syncx"
)

// ExampleNewPipeline demonstrates a FIFO pipeline between two stages.
func ExampleNewPipeline() {
	p := syncx.NewPipeline[int](8, syncx.PolicyWait, nil)

	// Producer sends 5 values
	for i := 1; i <= 5; i++ {
		p.Put(i * 10)
	}

	// Consumer receives values
	for range 5 {
		v, _ := p.Get()
		fmt.Println(v)
	}

	// Output:
	// 10
	// 20
	// 30
	// 40
	// 50
}

// ExampleBuild demonstrates the builder API with the DROP policy.
func ExampleBuild() {
	dropped := 0
	p := syncx.Build[string](syncx.New(3).Drop(), func(string) { dropped++ })

	for _, s := range []string{"A", "B", "C", "D"} {
		p.Put(s)
	}

	fmt.Println("policy:", p.Policy())
	fmt.Println("dropped:", dropped)
	for p.Len() > 0 {
		v, _ := p.Get()
		fmt.Println(v)
	}

	// Output:
	// policy: drop
	// dropped: 1
	// B
	// C
	// D
}

// ExamplePipeline_Close demonstrates eager close: queued items go to the
// destructor, not to consumers.
func ExamplePipeline_Close() {
	p := syncx.NewPipeline[string](2, syncx.PolicyWait, func(s string) {
		fmt.Println("destroyed", s)
	})
	p.Put("X")
	p.Put("Y")

	p.Close()

	_, ok := p.Get()
	fmt.Println("get ok:", ok)
	fmt.Println("put ok:", p.Put("Z"))

	// Output:
	// destroyed X
	// destroyed Y
	// get ok: false
	// put ok: false
}

// ExampleIsWouldBlock demonstrates the non-blocking calls.
func ExampleIsWouldBlock() {
	p := syncx.NewPipeline[int](1, syncx.PolicyWait, nil)

	fmt.Println(p.TryPut(1))
	err := p.TryPut(2)
	fmt.Println("full:", syncx.IsWouldBlock(err), syncx.IsSemantic(err))

	p.TryGet()
	_, err = p.TryGet()
	fmt.Println("empty:", syncx.IsWouldBlock(err))

	p.Close()
	_, err = p.TryGet()
	fmt.Println("closed:", syncx.IsClosed(err))

	// Output:
	// <nil>
	// full: true true
	// empty: true
	// closed: true
}

// ExampleNewPager demonstrates bulk allocation and recycling.
func ExampleNewPager() {
	pg := syncx.NewPager(64, 2)

	key, _ := pg.DupString("content-type")
	val, _ := pg.DupString("text/plain")
	fmt.Println(key + ": " + val)

	if _, err := pg.Alloc(65); errors.Is(err, syncx.ErrTooLarge) {
		fmt.Println("too large")
	}

	fmt.Println("in use:", pg.InUse())
	pg.Recycle()
	fmt.Println("in use:", pg.InUse(), "pages:", pg.Pages())

	// Output:
	// content-type: text/plain
	// too large
	// in use: 22
	// in use: 0 pages: 1
}

// ExampleMakeShared demonstrates reference counting with a free hook.
func ExampleMakeShared() {
	blk := syncx.MakeShared([]byte("frame"), syncx.WithFree(func(b *[]byte) {
		fmt.Printf("free %s\n", *b)
	}))

	extra := blk.Retain()
	fmt.Println("refs:", blk.Count())

	blk = blk.Release()
	fmt.Println("after first release:", blk != nil)
	extra = extra.Release()
	fmt.Println("after last release:", extra != nil)

	// Output:
	// refs: 2
	// after first release: true
	// free frame
	// after last release: false
}

// ExampleCondLock demonstrates shared and exclusive sections.
func ExampleCondLock() {
	var lock syncx.CondLock
	table := map[string]int{}

	lock.Exclusive(func() {
		table["a"] = 1
	})

	lock.Access()
	fmt.Println(table["a"])
	lock.Release()

	// Output:
	// 1
}
