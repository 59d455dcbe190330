// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softconv

import (
	"math/rand"
	"testing"
	"time"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

func benchFloats(n int) []float64 {
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	result := make([]float64, n)
	for i := range result {
		result[i] = (rnd.Float64()*2 - 1) * 1e9
	}
	return result
}

func benchInts(n int) []int64 {
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	result := make([]int64, n)
	for i := range result {
		result[i] = int64(rnd.Uint64())
	}
	return result
}

func BenchmarkFloat64ToInt64(b *testing.B) {
	fs := benchFloats(1024)
	var dummy int64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dummy += Float64ToInt64(fs[i&1023], false)
	}
	b.ReportMetric(float64(dummy&1), "dummy_metric")
}

func BenchmarkFloat64ToInt64Native(b *testing.B) {
	fs := benchFloats(1024)
	var dummy int64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dummy += int64(fs[i&1023])
	}
	b.ReportMetric(float64(dummy&1), "dummy_metric")
}

func BenchmarkFloat64ToInt64OtherFixed(b *testing.B) {
	fs := benchFloats(1024)
	var dummy int64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dummy += of.NewF(fs[i&1023]).Int()
	}
	b.ReportMetric(float64(dummy&1), "dummy_metric")
}

func BenchmarkFloat64ToInt64Decimal(b *testing.B) {
	fs := benchFloats(1024)
	var dummy int64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dummy += decimal.NewFromFloat(fs[i&1023]).IntPart()
	}
	b.ReportMetric(float64(dummy&1), "dummy_metric")
}

func BenchmarkInt64ToFloat32(b *testing.B) {
	is := benchInts(1024)
	var dummy float32
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dummy += Int64ToFloat32(is[i&1023], false)
	}
	b.ReportMetric(float64(dummy), "dummy_metric")
}

func BenchmarkInt64ToFloat32Native(b *testing.B) {
	is := benchInts(1024)
	var dummy float32
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dummy += float32(is[i&1023])
	}
	b.ReportMetric(float64(dummy), "dummy_metric")
}

func BenchmarkUint64ToFloat64(b *testing.B) {
	is := benchInts(1024)
	var dummy float64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dummy += Uint64ToFloat64(uint64(is[i&1023]), false)
	}
	b.ReportMetric(dummy, "dummy_metric")
}
