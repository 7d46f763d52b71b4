// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - join a relative filePath onto directory, then clean
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// MakeAbsolute - rewrite each path in place to lie under directory
//
// blank paths are left blank when optional is set
func MakeAbsolute(directory string, optional bool, paths ...*string) {
	for _, p := range paths {
		if optional && "" == *p {
			continue
		}
		*p = EnsureAbsolute(directory, *p)
	}
}

// IsPlainFileName - true if name has no directory part
func IsPlainFileName(name string) bool {
	switch filepath.Dir(name) {
	case "", ".":
		return true
	default:
		return false
	}
}

// EnsureDirectories - make each path absolute and create it if missing
func EnsureDirectories(directory string, paths ...*string) error {
	for _, p := range paths {
		*p = EnsureAbsolute(directory, *p)
		if err := os.MkdirAll(*p, 0700); nil != err {
			return err
		}
	}
	return nil
}

// EnsureFileExists - true if anything exists at name; key and
// certificate writers use this to refuse an overwrite
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
