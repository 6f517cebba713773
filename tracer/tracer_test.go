// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package tracer

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlush(t *testing.T) {
	Flush(&bytes.Buffer{})

	Log("first")
	Log("second")
	assert.Equal(t, []string{"first", "second"}, Messages())

	var buf bytes.Buffer
	Flush(&buf)
	assert.Equal(t, "first\nsecond\n", buf.String())
	assert.Empty(t, Messages())
}

func TestLog_Concurrent(t *testing.T) {
	Flush(&bytes.Buffer{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Log("msg")
		}()
	}
	wg.Wait()
	assert.Len(t, Messages(), 50)
}
