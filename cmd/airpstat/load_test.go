package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	airp "github.com/d1ced/jsonvalue_airp"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		have string
		want interface{}
	}{{
		"null", nil,
	}, {
		" true ", true,
	}, {
		"-12", int64(-12),
	}, {
		"18446744073709551615", uint64(math.MaxUint64),
	}, {
		"18446744073709551616", float64(18446744073709551616),
	}, {
		"2.5e3", 2500.,
	}, {
		`"abc"`, "abc",
	}, {
		`[]`, []interface{}{},
	}, {
		`{}`, map[string]interface{}{},
	}, {
		`{"a": 20, "b": [true, null, {"c": "a string longer than the cell"}]}`,
		map[string]interface{}{"a": int64(20), "b": []interface{}{
			true, nil, map[string]interface{}{"c": "a string longer than the cell"},
		}},
	}}
	for _, test := range tests {
		v, err := load(strings.NewReader(test.have))
		require.NoError(t, err, test.have)
		assert.Equal(t, test.want, v.Interface(), test.have)
	}
}

func TestLoadNegativeZero(t *testing.T) {
	v, err := load(strings.NewReader("[-0, 0, -0.0]"))
	require.NoError(t, err)
	got := v.Interface().([]interface{})
	require.Len(t, got, 3)
	neg, ok := got[0].(float64)
	require.True(t, ok, "-0 is %T", got[0])
	assert.True(t, math.Signbit(neg))
	assert.Equal(t, int64(0), got[1])
	assert.True(t, math.Signbit(got[2].(float64)))
}

func TestLoadErrors(t *testing.T) {
	for _, have := range []string{"", "[1,", `{"a" 1}`, "[1] 2", "nul", `{"a":[1,}`} {
		_, err := load(strings.NewReader(have))
		assert.Error(t, err, "%q", have)
	}
}

func TestLoadLargeArray(t *testing.T) {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < 1000; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{"id":1,"name":"n"}`)
	}
	b.WriteString("]")
	v, err := load(strings.NewReader(b.String()))
	require.NoError(t, err)
	arr := airp.MustCast[airp.Array[airp.Object[airp.Value]]](&v)
	assert.Equal(t, 1000, arr.Len())
	assert.Equal(t, 1023, arr.Cap())
	assert.True(t, arr.At(999).Has("name"))
}

func TestStatDump(t *testing.T) {
	CLI.Dump, CLI.Indent = true, " "
	defer func() { CLI.Dump, CLI.Indent = false, "" }()

	var logs, out bytes.Buffer
	require.NoError(t, statReader(log.NewLogfmtLogger(&logs), "doc", strings.NewReader(`{"k":[1]}`), &out))
	assert.Equal(t, "object len=1 cap=3\n short01 \"k\": array len=1 cap=3\n  [0] int64 1\n", out.String())
	assert.Contains(t, logs.String(), "file=doc")
	assert.Contains(t, logs.String(), "cells=4")
}
