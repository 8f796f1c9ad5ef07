package rbtree

import (
	"strconv"
	"testing"
)

const benchSize = 10_000

func BenchmarkInsert(b *testing.B) {
	for _, size := range []int{100, 1000, benchSize} {
		b.Run("Size-"+strconv.Itoa(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				tree, _ := New[int](Config{Capacity: size})
				for n := 0; n < size; n++ {
					tree.Insert(n)
				}
			}
		})
	}
}

func BenchmarkDeleteInsert(b *testing.B) {
	var tree Tree[int]
	for n := 0; n < benchSize; n++ {
		tree.Insert(n)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := i % benchSize
		tree.Delete(k)
		tree.Insert(k)
	}
}

func BenchmarkSearch(b *testing.B) {
	var tree Tree[string]
	for n := 0; n < benchSize; n++ {
		tree.Insert(strconv.Itoa(n))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Contains(strconv.Itoa(i % benchSize))
	}
}
