package inventory

import (
	"strconv"
	"testing"
)

func BenchmarkAdd(b *testing.B) {
	inv, _ := New[string, int](1000, 0)
	defer inv.Close()

	keys := make([]string, 4096)
	for i := range keys {
		keys[i] = "key-" + strconv.Itoa(i)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = inv.Add(NewEntry(keys[i%len(keys)], i, 0))
	}
}

func BenchmarkGet(b *testing.B) {
	inv, _ := New[string, int](1000, 0)
	defer inv.Close()

	for i := 0; i < 1000; i++ {
		_ = inv.Add(NewEntry("key-"+strconv.Itoa(i), i, 0))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = inv.Get("key-" + strconv.Itoa(i%1000))
	}
}

func BenchmarkGetParallel(b *testing.B) {
	inv, _ := New[string, int](1000, 0)
	defer inv.Close()

	for i := 0; i < 1000; i++ {
		_ = inv.Add(NewEntry("key-"+strconv.Itoa(i), i, 0))
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = inv.Get("key-" + strconv.Itoa(i%1000))
			i++
		}
	})
}

func BenchmarkSweep(b *testing.B) {
	inv, _ := New[string, int](1000, 0)
	defer inv.Close()

	for i := 0; i < 1000; i++ {
		_ = inv.Add(NewEntry("key-"+strconv.Itoa(i), i, 0))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inv.Sweep()
	}
}
