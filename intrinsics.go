// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softconv

// Integer to float conversions.
// Each function is the software counterpart of the runtime routine named in its comment.

// Int32ToFloat32 converts an int32 to a float32 (__floatsisf).
func Int32ToFloat32(i int32, debug bool) float32 {
	return IntToFloat[float32](i, debug)
}

// Int32ToFloat64 converts an int32 to a float64 (__floatsidf).
// The conversion is always exact.
func Int32ToFloat64(i int32, debug bool) float64 {
	return IntToFloat[float64](i, debug)
}

// Int64ToFloat32 converts an int64 to a float32 (__floatdisf).
func Int64ToFloat32(i int64, debug bool) float32 {
	return IntToFloat[float32](i, debug)
}

// Int64ToFloat64 converts an int64 to a float64 (__floatdidf).
func Int64ToFloat64(i int64, debug bool) float64 {
	return IntToFloat[float64](i, debug)
}

// Uint32ToFloat32 converts a uint32 to a float32 (__floatunsisf).
func Uint32ToFloat32(i uint32, debug bool) float32 {
	return IntToFloat[float32](i, debug)
}

// Uint32ToFloat64 converts a uint32 to a float64 (__floatunsidf).
// The conversion is always exact.
func Uint32ToFloat64(i uint32, debug bool) float64 {
	return IntToFloat[float64](i, debug)
}

// Uint64ToFloat32 converts a uint64 to a float32 (__floatundisf).
func Uint64ToFloat32(i uint64, debug bool) float32 {
	return IntToFloat[float32](i, debug)
}

// Uint64ToFloat64 converts a uint64 to a float64 (__floatundidf).
func Uint64ToFloat64(i uint64, debug bool) float64 {
	return IntToFloat[float64](i, debug)
}

// Float to integer conversions.

// Float32ToInt32 converts a float32 to an int32 (__fixsfsi).
func Float32ToInt32(f float32, debug bool) int32 {
	return FloatToInt[int32](f, debug)
}

// Float32ToInt64 converts a float32 to an int64 (__fixsfdi).
func Float32ToInt64(f float32, debug bool) int64 {
	return FloatToInt[int64](f, debug)
}

// Float64ToInt32 converts a float64 to an int32 (__fixdfsi).
func Float64ToInt32(f float64, debug bool) int32 {
	return FloatToInt[int32](f, debug)
}

// Float64ToInt64 converts a float64 to an int64 (__fixdfdi).
func Float64ToInt64(f float64, debug bool) int64 {
	return FloatToInt[int64](f, debug)
}

// Float32ToUint32 converts a float32 to a uint32 (__fixunssfsi).
// Negative values are converted to 0.
func Float32ToUint32(f float32, debug bool) uint32 {
	return FloatToInt[uint32](f, debug)
}

// Float32ToUint64 converts a float32 to a uint64 (__fixunssfdi).
func Float32ToUint64(f float32, debug bool) uint64 {
	return FloatToInt[uint64](f, debug)
}

// Float64ToUint32 converts a float64 to a uint32 (__fixunsdfsi).
func Float64ToUint32(f float64, debug bool) uint32 {
	return FloatToInt[uint32](f, debug)
}

// Float64ToUint64 converts a float64 to a uint64 (__fixunsdfdi).
func Float64ToUint64(f float64, debug bool) uint64 {
	return FloatToInt[uint64](f, debug)
}
