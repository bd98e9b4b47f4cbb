/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package strategy_test

import (
	"reflect"
	"runtime"
	"sync"
	"testing"

	apis "dirpx.dev/mirx/apis"
	"dirpx.dev/mirx/strategy"
)

// Named types for stable members.
type Stamp struct {
	At string
}

type Record struct {
	Stamp
	Key   string
	Value int
}

func (r Record) Pair() (string, int) { return r.Key, r.Value }

func (r *Record) Reset() { r.Key, r.Value = "", 0 }

func conf() apis.Config {
	return apis.Config{
		MaxDepth:        8,
		MaxUnwrap:       8,
		MapPreferElem:   true,
		CoerceArguments: true,
		AllowUnexported: true,
		CacheNegative:   true,
	}
}

// TestStrategies_ConcurrentLookup_NoRace verifies that the matcher chain
// steps are race-free and hand out stable member identities under heavy
// concurrency.
func TestStrategies_ConcurrentLookup_NoRace(t *testing.T) {
	declared := strategy.NewDeclaredStrategy()
	embedded := strategy.NewEmbeddedStrategy()
	cfg := conf()

	recordType := reflect.TypeOf(Record{})

	// Single-thread sanity and identity baseline.
	wantPair, ok := declared.TryMethod(recordType, "Pair", cfg)
	if !ok {
		t.Fatal("TryMethod(Record, Pair) failed")
	}
	wantKey, ok := declared.TryField(recordType, "Key", cfg)
	if !ok {
		t.Fatal("TryField(Record, Key) failed")
	}
	wantAt, ok := embedded.TryField(recordType, "At", cfg)
	if !ok {
		t.Fatal("TryField(Record, At) failed")
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				if m, ok := declared.TryMethod(recordType, "Pair", cfg); !ok || m != wantPair {
					t.Errorf("Pair lookup drifted: ok=%v m=%p want=%p", ok, m, wantPair)
					return
				}
				if m, ok := declared.TryField(recordType, "Key", cfg); !ok || m != wantKey {
					t.Errorf("Key lookup drifted: ok=%v m=%p want=%p", ok, m, wantKey)
					return
				}
				if m, ok := embedded.TryField(recordType, "At", cfg); !ok || m != wantAt {
					t.Errorf("At lookup drifted: ok=%v m=%p want=%p", ok, m, wantAt)
					return
				}
				// Misses stay misses.
				if m, ok := declared.TryMethod(recordType, "Vanish", cfg); ok || m != nil {
					t.Errorf("phantom hit: %+v", m)
					return
				}
			}
		}(w)
	}
	wg.Wait()
}

// Compile-time chain contract checks.
var (
	_ apis.Matcher = strategy.NewDeclaredStrategy()
	_ apis.Matcher = strategy.NewEmbeddedStrategy()
	_ apis.Matcher = strategy.NewCaseFormatStrategy()
)
