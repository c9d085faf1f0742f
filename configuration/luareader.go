// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/mpaland/avl-array/fault"
	"github.com/mpaland/avl-array/util"
)

// field names come only from the gluamapper tags
var mapper = gluamapper.NewMapper(gluamapper.Option{
	NameFunc: func(s string) string { return s },
	TagName:  "gluamapper",
})

// ParseConfigurationFile - execute a Lua configuration and decode the
// table it returns into the structure pointed to by config
//
// the script sees its own file name as arg[0]
func ParseConfigurationFile(fileName string, config interface{}) error {
	v := reflect.ValueOf(config)
	if reflect.Ptr != v.Kind() || v.IsNil() || reflect.Struct != v.Elem().Kind() {
		return fault.ErrInvalidStructPointer
	}

	if !util.IsFile(fileName) {
		return fault.ErrNotFoundConfigFile
	}

	table, err := evaluate(fileName)
	if nil != err {
		return err
	}
	return mapper.Map(table, config)
}

// run the script in a fresh state and return its result table
func evaluate(fileName string) (*lua.LTable, error) {
	L := lua.NewState()
	defer L.Close()

	args := L.NewTable()
	args.RawSetInt(0, lua.LString(fileName))
	L.SetGlobal("arg", args)

	if err := L.DoFile(fileName); nil != err {
		return nil, err
	}

	table, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return nil, fault.ErrInvalidConfigResult
	}
	return table, nil
}
