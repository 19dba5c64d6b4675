package recovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordingCollector struct {
	location string
	value    interface{}
	calls    int
}

func (c *recordingCollector) RecordPanic(location string, panicValue interface{}) {
	c.location = location
	c.value = panicValue
	c.calls++
}

func TestRecoverWithCallbackCatchesPanicAndReports(t *testing.T) {
	collector := &recordingCollector{}
	r := NewRecoverer(zap.NewNop(), collector)

	var callbackValue interface{}
	func() {
		defer r.RecoverWithCallback("test site", func(p interface{}) {
			callbackValue = p
		})
		panic("boom")
	}()

	assert.Equal(t, 1, collector.calls)
	assert.Equal(t, "test site", collector.location)
	assert.Equal(t, "boom", collector.value)
	assert.Equal(t, "boom", callbackValue)
}

func TestRecoverWithCallbackNoopsWithoutPanic(t *testing.T) {
	collector := &recordingCollector{}
	r := NewRecoverer(zap.NewNop(), collector)

	func() {
		defer r.RecoverWithCallback("test site", func(p interface{}) {
			t.Fatal("callback should not run without a panic")
		})
	}()

	assert.Equal(t, 0, collector.calls)
}

func TestRecoverWithCallbackToleratesNilCollectorAndCallback(t *testing.T) {
	r := NewRecoverer(zap.NewNop(), nil)

	assert.NotPanics(t, func() {
		func() {
			defer r.RecoverWithCallback("test site", nil)
			panic("boom")
		}()
	})
}
