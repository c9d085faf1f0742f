// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua benchmark configuration file
//
// most of base Lua is available such as loops to generate a list of
// benchmark runs and getenv to extract environment supplied items.
// The file must return a table, e.g.
//
//   return {
//       data_directory = ".",
//       report_interval = 5,
//       benchmark = {
//           { map_size = 1024, test_count = 1000, miss_percent = 10, containers = { "avl", "map" } },
//       },
//       logging = { size = 1048576, count = 10, levels = { main = "info", benchmark = "debug" } },
//   }
package configuration
