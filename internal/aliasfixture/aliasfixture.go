// Copyright (C) 2019 The aliasfixture Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package aliasfixture drives the fixture/app functions by the names consuming tools
// use for them, e.g. "run_alias_a", and audits the properties the fixture promises:
// alias and qualified references to the same helper agree, and namespaces are isolated.
package aliasfixture

import (
	"strings"

	"github.com/pkg/errors"

	cage_strings "github.com/codeactual/aliasfixture/internal/cage/strings"
	"github.com/codeactual/aliasfixture/internal/fixture/app"
)

// Ref identifies how a fixture function reaches its namespace's helper.
type Ref string

const (
	// RefQualified entries call the helper through the named import, e.g. util_a.Helper().
	RefQualified Ref = "qualified"

	// RefAlias entries call the helper through a package-level variable bound to it.
	RefAlias Ref = "alias"
)

// Entry describes one fixture function.
type Entry struct {
	// Name is the identifier consuming tools use, e.g. "run_module_a".
	Name string

	// Namespace is the sibling package the helper lives in, e.g. "a".
	Namespace string

	Ref Ref

	Call func() int
}

// Catalog returns all fixture functions in a fixed order.
func Catalog() []Entry {
	return []Entry{
		{Name: "run_module_a", Namespace: "a", Ref: RefQualified, Call: app.RunModuleA},
		{Name: "run_module_b", Namespace: "b", Ref: RefQualified, Call: app.RunModuleB},
		{Name: "run_alias_a", Namespace: "a", Ref: RefAlias, Call: app.RunAliasA},
		{Name: "run_alias_b", Namespace: "b", Ref: RefAlias, Call: app.RunAliasB},
	}
}

// Names returns the catalog's entry names in catalog order.
func Names() (names []string) {
	for _, e := range Catalog() {
		names = append(names, e.Name)
	}
	return names
}

// Find returns the catalog entry with the name.
func Find(name string) (Entry, error) {
	for _, e := range Catalog() {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, errors.Errorf("fixture function [%s] not found, available: %s", name, strings.Join(Names(), ", "))
}

// Select returns the named entries in catalog order, without duplicates.
//
// An empty selection returns the whole catalog. Each unknown name produces one error.
func Select(names ...string) (selected []Entry, errs []error) {
	want := cage_strings.NewSet()
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			want.Add(name)
		}
	}

	if want.Len() == 0 {
		return Catalog(), nil
	}

	for _, name := range want.SortedSlice() {
		if _, err := Find(name); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	for _, e := range Catalog() {
		if want.Contains(e.Name) {
			selected = append(selected, e)
		}
	}

	return selected, nil
}

// Namespaces returns the sorted, distinct namespaces of the entries.
func Namespaces(entries []Entry) []string {
	set := cage_strings.NewSet()
	for _, e := range entries {
		set.Add(e.Namespace)
	}
	return set.SortedSlice()
}
