// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark_test

import (
	"errors"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mpaland/avl-array/benchmark"
	"github.com/mpaland/avl-array/benchmark/mocks"
	"github.com/mpaland/avl-array/configuration"
	"github.com/mpaland/avl-array/fault"
)

func smallWorkload(t *testing.T) *benchmark.Workload {
	w, err := benchmark.NewWorkload(configuration.RunConfiguration{
		MapSize:     300,
		TestCount:   3,
		MissPercent: 20,
		Seed:        11,
	})
	if nil != err {
		t.Fatalf("workload error: %s", err)
	}
	return w
}

func TestRunAllContainers(t *testing.T) {
	w := smallWorkload(t)
	log := logger.New(logCategory)

	for _, name := range benchmark.Names() {
		factory, _ := benchmark.Lookup(name)
		tally := &benchmark.Tally{}

		result, err := benchmark.Run(log, w, factory, tally)
		if nil != err {
			t.Fatalf("%s: run error: %s", name, err)
		}

		assert.Equal(t, name, result.Container)
		assert.Equal(t, 300, result.MapSize)
		assert.Equal(t, 3, result.TestCount)
		assert.Equal(t, 20, result.MissPercent)
		assert.Equal(t, w.Misses, result.Misses)
		assert.True(t, result.Footprint > 0, name)

		names := []string{}
		for _, p := range result.Phases {
			names = append(names, p.Name)
		}
		assert.Equal(t, []string{
			benchmark.PhaseInsert,
			benchmark.PhaseFind,
			benchmark.PhaseChurn,
			benchmark.PhaseErase,
		}, names, name)
		assert.Equal(t, uint64(900), result.Phases[0].Operations)
		assert.Equal(t, uint64(900), result.Phases[1].Operations)
		assert.Equal(t, uint64(900), result.Phases[2].Operations)
		assert.Equal(t, uint64(300), result.Phases[3].Operations)

		s := tally.Snapshot()
		assert.Equal(t, uint64(2*900), s.Inserts, name)
		assert.Equal(t, uint64(900), s.Finds, name)
		assert.Equal(t, uint64(3*w.Misses), s.Misses, name)
		assert.Equal(t, uint64(900+300), s.Erases, name)
	}
}

func TestRunWithoutTally(t *testing.T) {
	w := smallWorkload(t)
	_, err := benchmark.Run(logger.New(logCategory), w, benchmark.NewAVL, nil)
	assert.Nil(t, err)
}

func TestRunInvalidWorkload(t *testing.T) {
	w := &benchmark.Workload{MapSize: 10, TestCount: 0}
	_, err := benchmark.Run(logger.New(logCategory), w, benchmark.NewAVL, nil)
	assert.Equal(t, fault.ErrInvalidTestCount, err)
}

func mockFactory(m *mocks.MockContainer) benchmark.Factory {
	return func(capacity int) (benchmark.Container, error) {
		return m, nil
	}
}

func TestRunInsertFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockContainer(ctl)
	defer ctl.Finish()

	w := smallWorkload(t)

	m.EXPECT().Name().Return("mock").AnyTimes()
	m.EXPECT().Insert(w.Keys[0], w.Keys[0]).Return(false).Times(1)

	_, err := benchmark.Run(logger.New(logCategory), w, mockFactory(m), nil)
	assert.True(t, errors.Is(err, fault.ErrInsertFailed), "actual: %v", err)
}

func TestRunFactoryFailure(t *testing.T) {
	w := smallWorkload(t)
	factory := func(capacity int) (benchmark.Container, error) {
		return nil, fault.ErrInvalidCapacity
	}
	_, err := benchmark.Run(logger.New(logCategory), w, factory, nil)
	assert.Equal(t, fault.ErrInvalidCapacity, err)
}

func TestRunWrongValue(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockContainer(ctl)
	defer ctl.Finish()

	w := smallWorkload(t)

	m.EXPECT().Name().Return("mock").AnyTimes()
	m.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true).Times(w.MapSize * w.TestCount)
	m.EXPECT().Footprint().Return(uintptr(4096)).Times(1)
	m.EXPECT().Len().Return(w.MapSize).AnyTimes()
	m.EXPECT().Get(gomock.Any()).Return(-1, true).MinTimes(1)

	_, err := benchmark.Run(logger.New(logCategory), w, mockFactory(m), nil)
	assert.True(t, errors.Is(err, fault.ErrLookupMismatch), "actual: %v", err)
}

func TestRunWrongMissCount(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockContainer(ctl)
	defer ctl.Finish()

	w := smallWorkload(t)

	m.EXPECT().Name().Return("mock").AnyTimes()
	m.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true).AnyTimes()
	m.EXPECT().Footprint().Return(uintptr(4096)).AnyTimes()
	m.EXPECT().Len().Return(w.MapSize).AnyTimes()
	m.EXPECT().Get(gomock.Any()).Return(0, false).Times(w.MapSize)

	_, err := benchmark.Run(logger.New(logCategory), w, mockFactory(m), nil)
	assert.True(t, errors.Is(err, fault.ErrLookupMismatch), "actual: %v", err)
}

func TestRunEraseFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockContainer(ctl)
	defer ctl.Finish()

	w := smallWorkload(t)

	m.EXPECT().Name().Return("mock").AnyTimes()
	m.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true).AnyTimes()
	m.EXPECT().Footprint().Return(uintptr(4096)).AnyTimes()
	m.EXPECT().Len().Return(w.MapSize).AnyTimes()
	m.EXPECT().Get(gomock.Any()).DoAndReturn(func(key int) (int, bool) {
		return key, benchmark.MissingKey != key
	}).AnyTimes()
	m.EXPECT().Erase(w.Keys[0]).Return(false).Times(1)

	_, err := benchmark.Run(logger.New(logCategory), w, mockFactory(m), nil)
	assert.True(t, errors.Is(err, fault.ErrEraseFailed), "actual: %v", err)
}

// a container that never shrinks fails the final length check
func TestRunLengthAfterErase(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockContainer(ctl)
	defer ctl.Finish()

	w := smallWorkload(t)

	m.EXPECT().Name().Return("mock").AnyTimes()
	m.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true).AnyTimes()
	m.EXPECT().Footprint().Return(uintptr(4096)).AnyTimes()
	m.EXPECT().Len().Return(w.MapSize).AnyTimes()
	m.EXPECT().Get(gomock.Any()).DoAndReturn(func(key int) (int, bool) {
		return key, benchmark.MissingKey != key
	}).AnyTimes()
	m.EXPECT().Erase(gomock.Any()).Return(true).AnyTimes()

	_, err := benchmark.Run(logger.New(logCategory), w, mockFactory(m), nil)
	assert.True(t, errors.Is(err, fault.ErrLengthMismatch), "actual: %v", err)
}

func TestPhaseQPS(t *testing.T) {
	p := benchmark.Phase{Name: "x", Operations: 500, Duration: 250 * time.Millisecond}
	assert.Equal(t, 2000.0, p.QPS())

	p.Duration = 0
	assert.Equal(t, 0.0, p.QPS())
}
