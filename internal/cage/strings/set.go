// Copyright (C) 2019 The CodeActual Go Environment Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package strings

import "sync"

type Set struct {
	sync.RWMutex

	data map[string]struct{}
}

// NewSet returns an initialized Set.
//
// It returns a pointer to support use as a map's value type and avoid the "cannot call pointer method" error.
func NewSet() *Set {
	return &Set{
		data: make(map[string]struct{}),
	}
}

func (s *Set) Add(el string) bool {
	s.Lock()
	defer s.Unlock()

	if _, ok := s.data[el]; ok {
		return false
	}

	s.data[el] = struct{}{}

	return true
}

func (s *Set) AddSlice(slices ...[]string) *Set {
	s.Lock()
	defer s.Unlock()

	for _, slice := range slices {
		for _, el := range slice {
			s.data[el] = struct{}{}
		}
	}

	return s
}

func (s *Set) Contains(el string) bool {
	s.RLock()
	defer s.RUnlock()

	_, ok := s.data[el]
	return ok
}

func (s *Set) Len() int {
	s.RLock()
	defer s.RUnlock()

	return len(s.data)
}

// Slice returns the elements in no particular order.
func (s *Set) Slice() []string {
	s.RLock()
	defer s.RUnlock()

	all := []string{}
	for k := range s.data {
		all = append(all, k)
	}
	return all
}

func (s *Set) SortedSlice() []string {
	// Slice locks internally.
	all := s.Slice()
	SortStable(all)
	return all
}

func (s *Set) Equals(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}

	otherSlice := other.SortedSlice()
	for n, v := range s.SortedSlice() {
		if v != otherSlice[n] {
			return false
		}
	}

	return true
}
