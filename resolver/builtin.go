package resolver

import (
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"path/filepath"
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"lukechampine.com/uint128"
)

// Built-in type identifiers.
const (
	String  TypeID = "string"
	Bool    TypeID = "bool"
	Rune    TypeID = "rune"
	Int     TypeID = "int"
	Int8    TypeID = "int8"
	Int16   TypeID = "int16"
	Int32   TypeID = "int32"
	Int64   TypeID = "int64"
	Uint    TypeID = "uint"
	Uint8   TypeID = "uint8"
	Uint16  TypeID = "uint16"
	Uint32  TypeID = "uint32"
	Uint64  TypeID = "uint64"
	Float32 TypeID = "float32"
	Float64 TypeID = "float64"

	BigInt   TypeID = "bigint"
	BigFloat TypeID = "bigfloat"
	BigRat   TypeID = "bigrat"
	Uint128  TypeID = "uint128"

	Duration TypeID = "duration"
	Time     TypeID = "time"
	Path     TypeID = "path"
	Regexp   TypeID = "regexp"
	URL      TypeID = "url"
	Bytes    TypeID = "bytes"
	UUID     TypeID = "uuid"
	Semver   TypeID = "semver"
)

var errEmpty = errors.New("empty input")

type signedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Builtin returns a fresh map of the resolvers every default registry starts
// with.
func Builtin() map[TypeID]Func {
	return map[TypeID]Func{
		String: func(raw string) (any, error) { return raw, nil },
		Bool:   func(raw string) (any, error) { return strconv.ParseBool(raw) },
		Rune:   parseRune,

		Int:   signed[int](strconv.IntSize),
		Int8:  signed[int8](8),
		Int16: signed[int16](16),
		Int32: signed[int32](32),
		Int64: signed[int64](64),

		Uint:   unsigned[uint](strconv.IntSize),
		Uint8:  unsigned[uint8](8),
		Uint16: unsigned[uint16](16),
		Uint32: unsigned[uint32](32),
		Uint64: unsigned[uint64](64),

		Float32: func(raw string) (any, error) {
			v, err := strconv.ParseFloat(raw, 32)
			if err != nil {
				return nil, err
			}

			return float32(v), nil
		},
		Float64: func(raw string) (any, error) { return strconv.ParseFloat(raw, 64) },

		BigInt:   parseBigInt,
		BigFloat: parseBigFloat,
		BigRat:   parseBigRat,
		Uint128:  func(raw string) (any, error) { return uint128.FromString(raw) },

		Duration: func(raw string) (any, error) { return time.ParseDuration(raw) },
		Time:     func(raw string) (any, error) { return time.Parse(time.RFC3339, raw) },
		Path:     parsePath,
		Regexp:   func(raw string) (any, error) { return regexp.Compile(raw) },
		URL:      func(raw string) (any, error) { return url.Parse(raw) },
		Bytes:    func(raw string) (any, error) { return []byte(raw), nil },
		UUID:     func(raw string) (any, error) { return uuid.Parse(raw) },
		Semver:   func(raw string) (any, error) { return semver.NewVersion(raw) },
	}
}

func signed[T signedInt](bits int) Func {
	return func(raw string) (any, error) {
		v, err := strconv.ParseInt(raw, 10, bits)
		if err != nil {
			return nil, err
		}

		return T(v), nil
	}
}

func unsigned[T unsignedInt](bits int) Func {
	return func(raw string) (any, error) {
		v, err := strconv.ParseUint(raw, 10, bits)
		if err != nil {
			return nil, err
		}

		return T(v), nil
	}
}

func parseRune(raw string) (any, error) {
	if raw == "" {
		return nil, errEmpty
	}

	r, _ := utf8.DecodeRuneInString(raw)
	if r == utf8.RuneError {
		return nil, fmt.Errorf("invalid UTF-8 in %q", raw)
	}

	return r, nil
}

func parseBigInt(raw string) (any, error) {
	v, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, errors.New("invalid integer")
	}

	return v, nil
}

func parseBigFloat(raw string) (any, error) {
	v, ok := new(big.Float).SetString(raw)
	if !ok {
		return nil, errors.New("invalid floating-point number")
	}

	return v, nil
}

func parseBigRat(raw string) (any, error) {
	v, ok := new(big.Rat).SetString(raw)
	if !ok {
		return nil, errors.New("invalid decimal number")
	}

	return v, nil
}

func parsePath(raw string) (any, error) {
	if raw == "" {
		return nil, errEmpty
	}

	return filepath.Clean(raw), nil
}
