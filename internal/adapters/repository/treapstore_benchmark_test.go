package repository

import (
	"context"
	"fmt"
	"testing"
)

func BenchmarkTreapStore_Put(b *testing.B) {
	ctx := context.Background()
	store := NewTreapStore(WithMetrics(false))
	ids := make([]string, 10_000)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%05d", i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.Put(ctx, entry(ids[i%len(ids)], i%101, float64(i%997)/500))
	}
}

func BenchmarkTreapStore_Get(b *testing.B) {
	ctx := context.Background()
	store := NewTreapStore(WithMetrics(false))
	for i := 0; i < 10_000; i++ {
		_, _ = store.Put(ctx, entry(fmt.Sprintf("p%05d", i), i%101, 0))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.Get(ctx, fmt.Sprintf("p%05d", i%10_000))
	}
}

func BenchmarkTreapStore_TopN(b *testing.B) {
	ctx := context.Background()
	store := NewTreapStore(WithMetrics(false))
	for i := 0; i < 10_000; i++ {
		_, _ = store.Put(ctx, entry(fmt.Sprintf("p%05d", i), i%101, 0))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.TopN(ctx, 25)
	}
}
