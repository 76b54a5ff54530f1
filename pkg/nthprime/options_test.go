package nthprime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsResolvedDefaults(t *testing.T) {
	r := (*Options)(nil).resolved()
	assert.Equal(t, DefaultSegmentSize, r.SegmentSize)
	assert.Equal(t, uint64(DefaultRegularThreshold), r.RegularThreshold)
	assert.Equal(t, uint64(DefaultPrimeCountingThreshold), r.PrimeCountingThreshold)

	partial := &Options{Method: PrimeCounting}
	r = partial.resolved()
	assert.Equal(t, PrimeCounting, r.Method)
	assert.Equal(t, DefaultSegmentSize, r.SegmentSize)
}

func TestOptionsResolvedDoesNotMutateCaller(t *testing.T) {
	o := &Options{SegmentSize: -5}
	r := o.resolved()
	assert.Equal(t, -5, o.SegmentSize)
	assert.Equal(t, DefaultSegmentSize, r.SegmentSize)
}

func TestLoggerFuncNilSafe(t *testing.T) {
	var f LoggerFunc
	assert.NotPanics(t, func() { f.Logf("hello %d", 1) })
}

func TestLoggerFuncInvoked(t *testing.T) {
	var got string
	f := LoggerFunc(func(format string, args ...any) {
		got = format
	})
	f.Logf("msg")
	assert.Equal(t, "msg", got)
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "auto", Auto.String())
	assert.Equal(t, "regular", Regular.String())
	assert.Equal(t, "segmented", Segmented.String())
	assert.Equal(t, "prime-counting", PrimeCounting.String())
	assert.Equal(t, "unknown", Method(99).String())
}
