// Copyright 2025 Greenmask
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

package recordext

import (
	"context"
	"reflect"
	"sync"
)

var (
	_ Reader = (*ContextReader)(nil)
)

type isNullResult struct {
	isNull bool
	err    error
}

// ContextReader - lifts a synchronous Record into a Reader. Every context
// call is executed in a separate goroutine and is abandoned when the context
// is done. The abandoned call still runs to completion on the record, so after
// a context error the record must not be advanced or modified until Wait
// returns.
type ContextReader struct {
	Record
	inflight sync.WaitGroup
}

func NewContextReader(r Record) *ContextReader {
	return &ContextReader{Record: r}
}

// Wait - block until every call abandoned on a done context has returned.
func (c *ContextReader) Wait() {
	c.inflight.Wait()
}

func (c *ContextReader) IsNullContext(ctx context.Context, idx int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	done := make(chan isNullResult, 1)
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		isNull, err := c.Record.IsNull(idx)
		done <- isNullResult{
			isNull: isNull,
			err:    err,
		}
	}()
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case res := <-done:
		return res.isNull, res.err
	}
}

func (c *ContextReader) ScanContext(ctx context.Context, idx int, dest any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Pointer || dv.IsNil() {
		// Let the record report the wrong destination.
		return c.Record.Scan(idx, dest)
	}
	// Scan into a private copy: the abandoned goroutine must not write into
	// the caller destination after the context is done.
	tmp := reflect.New(dv.Elem().Type())
	done := make(chan error, 1)
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		done <- c.Record.Scan(idx, tmp.Interface())
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return err
		}
		dv.Elem().Set(tmp.Elem())
		return nil
	}
}
